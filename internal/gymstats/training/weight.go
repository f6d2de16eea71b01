package training

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weight is a mass in hundredths of a kilogram.
type Weight int64

const Kilogram Weight = 100

func KG(kg float64) Weight {
	return Weight(math.Round(kg * 100))
}

func (w Weight) Kilos() float64 {
	return float64(w) / 100
}

// String always renders with a '.' decimal separator and two decimals.
func (w Weight) String() string {
	sign := ""
	v := int64(w)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Round returns w rounded to the given number of decimals (0..2).
func (w Weight) Round(decimals int) Weight {
	switch {
	case decimals >= 2:
		return w
	case decimals <= 0:
		return KG(math.Round(w.Kilos()))
	default:
		return KG(math.Round(w.Kilos()*10) / 10)
	}
}

func (w Weight) Mul(f float64) Weight {
	return Weight(math.Round(float64(w) * f))
}

func (w Weight) MarshalJSON() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalJSON accepts numbers and numeric strings; a decimal comma is tolerated on input.
func (w *Weight) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*w = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParseWeight(s)
		if err != nil {
			return err
		}
		*w = parsed
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid weight %q: %w", b, err)
	}
	*w = KG(f)
	return nil
}

func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return KG(f), nil
}
