package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write to all of its writers. A failing writer does not
// stop the others; the failures are combined into the returned error.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{writers: make([]io.Writer, 0, len(writers))}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write reports len(p) when at least one writer took the whole buffer.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err      error
		complete bool
	)
	for i, w := range cw.writers {
		n, werr := w.Write(p)
		switch {
		case werr != nil:
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
		case n < len(p):
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, io.ErrShortWrite))
		default:
			complete = true
		}
	}
	if !complete {
		return 0, err
	}
	return len(p), err
}
