package middleware

import (
	"io"
	"net/http"
)

// drained bytes past this are not worth reading, the connection is closed instead
const maxDrainBytes = 256 << 10

// LimitAndDrainBody caps request bodies at maxBytes and, once the handler is done,
// discards whatever it left unread so the connection can be reused.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			if maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			body := r.Body
			next.ServeHTTP(w, r)

			_, _ = io.CopyN(io.Discard, body, maxDrainBytes)
			_ = body.Close()
		})
	}
}
