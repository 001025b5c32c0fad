package textcalc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Operators contains the binary operators in the order EvalUnit checks for
// them. The first one present anywhere in a unit is the one it splits on,
// regardless of where it appears or what else the unit contains.
const Operators = "+-/*"

var numre = regexp.MustCompile(`^(?:\d+|\d+\.\d+)$`)

var unbracket = strings.NewReplacer("(", "", ")", "")

// EvalUnit evaluates one reduction unit, such as "(9*2-5)" or "sqrt(5)".
// Brackets are ignored. A unit naming sqrt takes the square root of the rest
// of its text. Otherwise the unit is split in two at the first occurrence of
// the first operator in Operators that it contains, and each side that still
// contains an operator is evaluated the same way.
//
// Division by zero is not an error; the result is infinite or NaN.
func EvalUnit(unit string) (float64, error) {
	unit = unbracket.Replace(unit)
	if strings.Contains(unit, "sqrt") {
		x, err := ParseNumber(strings.ReplaceAll(unit, "sqrt", ""))
		if err != nil {
			return 0, err
		}
		return math.Sqrt(x), nil
	}
	return compute(unit)
}

// compute evaluates an operator chain by presence-order dispatch.
func compute(s string) (float64, error) {
	for _, op := range Operators {
		k := strings.IndexRune(s, op)
		if k < 0 {
			continue
		}
		l, err := compute(s[:k])
		if err != nil {
			return 0, err
		}
		r, err := compute(s[k+1:])
		if err != nil {
			return 0, err
		}
		return apply(op, l, r), nil
	}
	return ParseNumber(s)
}

func apply(op rune, l, r float64) float64 {
	switch op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default:
		panic("textcalc: unknown operator " + strconv.QuoteRune(op))
	}
}

// ParseNumber parses an unsigned decimal literal: digits, optionally followed
// by a decimal point and more digits. Anything else, including signs,
// exponents, and the empty string, is an *InvalidInputError. Literals too
// large for a float64 parse as +Inf.
func ParseNumber(s string) (float64, error) {
	if !numre.MatchString(s) {
		return 0, &InvalidInputError{Text: s}
	}
	// The syntax is already checked, so the only possible error is ErrRange,
	// in which case f is +Inf.
	f, _ := strconv.ParseFloat(s, 64)
	return f, nil
}
