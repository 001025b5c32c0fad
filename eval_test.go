package textcalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/textcalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"nested", "( 2 + ( ( 4 + 6 ) * (9 * 2) - ( 5 - 1)))", "178.0"},
		{"sqrt", "( 2 + ( ( 4 + 6 ) * sqrt(5)) / 2 )", "13.180339887498949"},
		{"unbracketed-outer", "2 + ( ( 4 + 6 ) * (9 * ( 2 + 5 - 1)))", "542.0"},
		{"int", "42", "42"},
		{"real", "1.55", "1.55"},
		{"spaced-int", " 4 2 ", "42"},
		{"add", "2+3", "5.0"},
		{"sub", "2 - 5", "-3.0"},
		{"chain", "4+6+2", "12.0"},
		{"plus-first", "5*3+1", "16.0"},
		{"div-before-mul", "8/2*2", "2.0"},
		{"right-grouped", "1-2-3", "2.0"},
		{"bracketed", "(4+6)", "10.0"},
		{"sqrt-only", "sqrt(16)", "4.0"},
		{"sqrt-chain", "sqrt(4)+sqrt(9)", "5.0"},
		{"repeated-unit", "(1+1)*(1+1)", "4.0"},
		{"div-zero", "1/0", "Infinity"},
		{"half", "(1/2)", "0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := textcalc.Eval(c.src)
			if err != nil {
				t.Fatalf("%q gave error: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q gave wrong result: want %s, got %s", c.src, c.r, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		bracket bool
		rem     string
	}{
		{"unclosed", "(1+2", true, "(1+2"},
		{"unopened", "1+2)", true, "1+2)"},
		{"extra-open", "((2+3)", true, "(5.0"},
		{"unbalanced-nested", "((2 + ( ( 4 + 6 ) * (9 * ( 2 + 5 - 1)))", true, "((2+540.0"},
		{"negative-inner", "(1+(2-5))", true, "(1+-3.0)"},
		{"letters", "abc+1", false, "abc"},
		{"trailing-letter", "1.55a", false, "1.55a"},
		{"empty", "", false, ""},
		{"blank", " \t ", false, ""},
		{"negative-result", "(2-1*5)", false, ""},
		{"dangling-op", "2*", false, ""},
		{"sqrt-real", "sqrt(2.5)", false, "sqrt2.5"},
		{"infinite-inner", "(1/0)", false, "Infinity"},
		{"two-points", "(1.2.3+4)", false, "1.2.3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := textcalc.Eval(c.src)
			if err == nil {
				t.Fatalf("%q gave no error, result %s", c.src, r)
			}
			if r != "" {
				t.Errorf("%q gave result %q with error", c.src, r)
			}
			var ie textcalc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if got := ie.Remainder(); got != c.rem {
				t.Errorf("%q: wrong remainder: want %q, got %q", c.src, c.rem, got)
			}
			if c.bracket {
				var be *textcalc.UnmatchedBracketsError
				if !errors.As(err, &be) {
					t.Errorf("%#v is not *textcalc.UnmatchedBracketsError", err)
				}
				return
			}
			var ve *textcalc.InvalidInputError
			if !errors.As(err, &ve) {
				t.Errorf("%#v is not *textcalc.InvalidInputError", err)
			}
		})
	}
}

func TestEvalFixpoint(t *testing.T) {
	cases := []string{
		"(2+((4+6)*(9*2)-(5-1)))",
		"(2+((4+6)*sqrt(5))/2)",
		"(1/3)",
		"sqrt(2)",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			r, err := textcalc.Eval(src)
			if err != nil {
				t.Fatalf("%q gave error: %v", src, err)
			}
			s, err := textcalc.Eval(r)
			if err != nil {
				t.Fatalf("re-evaluating %q gave error: %v", r, err)
			}
			if s != r {
				t.Errorf("re-evaluating %q gave %q", r, s)
			}
		})
	}
}

func TestReport(t *testing.T) {
	cases := []struct {
		name string
		src  string
		out  string
	}{
		{"nested", "( 2 + ( ( 4 + 6 ) * (9 * 2) - ( 5 - 1)))", "The result is: 178.0"},
		{"sqrt", "( 2 + ( ( 4 + 6 ) * sqrt(5)) / 2 )", "The result is: 13.180339887498949"},
		{"outer", "2 + ( ( 4 + 6 ) * (9 * ( 2 + 5 - 1)))", "The result is: 542.0"},
		{"unbalanced", "((2 + ( ( 4 + 6 ) * (9 * ( 2 + 5 - 1)))", "There are unmatched brackets in your expression, please input a well-formatted expression."},
		{"unclosed", "(1+2", "There are unmatched brackets in your expression, please input a well-formatted expression."},
		{"invalid", "abc+1", "Your input is invalid, please input a well-formatted expression."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := textcalc.Report(textcalc.Eval(c.src)); got != c.out {
				t.Errorf("%q reported wrong output:\nwant %q\ngot  %q", c.src, c.out, got)
			}
		})
	}
}
