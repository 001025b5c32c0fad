package textcalc

import (
	"io"
	"log/slog"
	"math"
	"regexp"
	"strings"
)

// Expr is an expression under reduction. Each evaluation uses its own Expr;
// it is not safe to use an Expr concurrently.
type Expr struct {
	text  string
	steps []Step
	log   *slog.Logger
}

// Step records one substitution made while reducing an expression.
type Step struct {
	// Unit is the text that was evaluated.
	Unit string
	// Value is the rendered result that replaced every occurrence of Unit.
	Value string
}

// Option is an option used when creating an Expr.
type Option interface {
	exprOption()
}

type logopt struct {
	l *slog.Logger
}

func (logopt) exprOption() {}

// WithLogger sets a logger which receives a debug record for every
// substitution. A nil logger disables logging, which is also the default.
func WithLogger(l *slog.Logger) Option {
	return logopt{l}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))

var (
	// funcre matches a sqrt call on a literal integer.
	funcre = regexp.MustCompile(`sqrt\(\d+\)`)
	// bracketre matches an innermost bracketed chain of numbers and
	// operators. The decimal point is in the separator class, so results
	// substituted by earlier steps, like 10.0, still match.
	bracketre = regexp.MustCompile(`\((?:\d+[-+*/.])+\d+\)`)
)

// New creates an expression from src with whitespace removed.
func New(src string, opts ...Option) *Expr {
	e := Expr{text: Normalize(src), log: discard}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case logopt:
			if opt.l != nil {
				e.log = opt.l
			}
		default:
			panic("textcalc: unknown option type")
		}
	}
	return &e
}

// Text returns the current text of the expression.
func (e *Expr) Text() string {
	return e.text
}

// Steps returns the substitutions made so far, in order.
func (e *Expr) Steps() []Step {
	return append(([]Step)(nil), e.steps...)
}

// Reduce reduces the expression to a single number and returns its text.
// sqrt calls on literals are resolved first, then bracketed chains from the
// innermost out, and finally whatever remains is validated. If the remainder
// is an unbracketed chain such as 2+3, it is evaluated as one more unit.
func (e *Expr) Reduce() (string, error) {
	if err := e.ReduceFuncs(); err != nil {
		return "", err
	}
	if err := e.ReduceBrackets(); err != nil {
		return "", err
	}
	if err := e.validate(); err != nil {
		return "", err
	}
	return e.text, nil
}

// ReduceFuncs replaces sqrt calls on literal integers with their values
// until none remain.
func (e *Expr) ReduceFuncs() error {
	return e.reduce(funcre)
}

// ReduceBrackets replaces innermost bracketed chains with their values until
// none remain. Text that never matches, such as a chain containing a
// negative number, is left for validation.
func (e *Expr) ReduceBrackets() error {
	return e.reduce(bracketre)
}

// reduce substitutes the leftmost match of re until there is none. Every
// match contains an open bracket and no substituted value does, so this
// terminates.
func (e *Expr) reduce(re *regexp.Regexp) error {
	for {
		unit := re.FindString(e.text)
		if unit == "" {
			return nil
		}
		if err := e.substitute(unit); err != nil {
			return err
		}
	}
}

// substitute evaluates unit and replaces every occurrence of it in the text.
func (e *Expr) substitute(unit string) error {
	v, err := EvalUnit(unit)
	if err != nil {
		e.log.Debug("unit failed", slog.String("unit", unit), slog.Any("err", err))
		return err
	}
	s := FormatFloat(v)
	e.log.Debug("reduced", slog.String("unit", unit), slog.String("value", s))
	e.steps = append(e.steps, Step{Unit: unit, Value: s})
	e.text = strings.ReplaceAll(e.text, unit, s)
	return nil
}

// Eval is a shortcut to create an expression from src and reduce it.
func Eval(src string, opts ...Option) (string, error) {
	return New(src, opts...).Reduce()
}
