package textcalc

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f the way results are substituted into expressions and
// reported: the shortest decimal that round-trips, always with a fractional
// part, e.g. 178.0 or 13.180339887498949. Magnitudes of at least 1e16 or less
// than 1e-4 use exponent form, e.g. 1.0e+16 or 2.5e-05.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		k := strings.IndexByte(s, 'e')
		if !strings.Contains(s[:k], ".") {
			s = s[:k] + ".0" + s[k:]
		}
		return s
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Report produces the line printed for one evaluation: the result with a
// prefix, or the error's message alone.
func Report(result string, err error) string {
	if err != nil {
		return err.Error()
	}
	return "The result is: " + result
}
