package sparkline

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v the way the cells' canonical text expects: whole
// numbers keep a trailing ".0", very large or very small magnitudes switch to
// "1.5E7" notation.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// e.g. 1.5E+07 => 1.5E7, 1E-05 => 1.0E-5
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}

	return mantissa + "E" + strconv.Itoa(exp)
}

func joinFloats(values []float64, sep string) string {
	b := strings.Builder{}
	for i, v := range values {
		if i != 0 {
			b.WriteString(sep)
		}
		b.WriteString(FormatFloat(v))
	}

	return b.String()
}
