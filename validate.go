package textcalc

import "strings"

// validate checks the text left after reduction. Any bracket is unmatched,
// since every balanced group has been reduced. A remaining operator chain is
// evaluated as a whole, and its value is the result even when it is negative
// or infinite. Anything else must be a plain number.
func (e *Expr) validate() error {
	switch {
	case strings.ContainsAny(e.text, "()"):
		return &UnmatchedBracketsError{Text: e.text}
	case strings.ContainsAny(e.text, Operators):
		return e.substitute(e.text)
	case !numre.MatchString(e.text):
		return &InvalidInputError{Text: e.text}
	}
	return nil
}
