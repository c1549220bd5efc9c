package value

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders a final evaluation result for display. Only numbers and Nil
// can be results; anything else reaching here means the interpreter returned a
// node label, which is reported as ErrNotPrintable. NaN and infinities are
// ErrNotFinite.
func Format(v Value) (string, error) {
	switch v := v.(type) {
	case Int:
		return strconv.FormatInt(int64(v), 10), nil
	case Double:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return "", fmt.Errorf("%w: %v", ErrNotFinite, float64(v))
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 64), nil
	case nil_:
		return "null", nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrNotPrintable, v.String())
	}
}
