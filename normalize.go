package textcalc

import (
	"strings"
	"unicode"
)

// Normalize removes all whitespace from src. Every other rune is kept in
// order.
func Normalize(src string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}
