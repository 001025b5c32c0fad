package textcalc

// Messages reported for failed evaluations. These are part of the command's
// output and must not change.
const (
	unmatchedMsg = "There are unmatched brackets in your expression, please input a well-formatted expression."
	invalidMsg   = "Your input is invalid, please input a well-formatted expression."
)

// UnmatchedBracketsError is an error indicating that brackets remained in an
// expression after every balanced group was reduced. It implements
// InputError.
type UnmatchedBracketsError struct {
	// Text is the expression text left after reduction.
	Text string
}

func (err *UnmatchedBracketsError) Error() string {
	return unmatchedMsg
}

func (err *UnmatchedBracketsError) Remainder() string {
	return err.Text
}

// InvalidInputError is an error indicating text that is neither a number nor
// a chain of numbers and operators. It implements InputError.
type InvalidInputError struct {
	// Text is the operand or remainder that failed to parse as a number.
	Text string
}

func (err *InvalidInputError) Error() string {
	return invalidMsg
}

func (err *InvalidInputError) Remainder() string {
	return err.Text
}

// InputError is an error caused by a malformed expression. Every error
// returned from evaluation implements InputError.
type InputError interface {
	error
	// Remainder returns the text that could not be reduced.
	Remainder() string
}

var (
	_ InputError = (*UnmatchedBracketsError)(nil)
	_ InputError = (*InvalidInputError)(nil)
)
