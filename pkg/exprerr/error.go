// Package exprerr defines the error taxonomy shared by every stage of the
// expression pipeline: the lexer, shunting-yard and evaluator report their
// own failures as *Error so callers can switch on Kind instead of parsing
// messages.
package exprerr

import "fmt"

// Kind classifies the failure. See spec.md §7 for the full taxonomy.
type Kind int

const (
	// Empty means the input string contained no non-whitespace characters.
	Empty Kind = iota
	// InvalidInput means a lexeme could not be interpreted: unparsable
	// numeric literal, unknown operator symbol, or a missing
	// variable/constant/callable at evaluation time.
	InvalidInput
	// InvalidExpression means a structural violation was found during
	// shunting-yard or evaluation: mismatched grouping, misplaced comma,
	// empty parentheses, stray operator, leftover values.
	InvalidExpression
	// InvalidArgumentCount means a callable was invoked with an arity it
	// rejects.
	InvalidArgumentCount
	// DivisionByZero is surfaced by callables and propagated unchanged.
	DivisionByZero
	// Overflow is surfaced by callables and propagated unchanged.
	Overflow
	// NaN is surfaced by callables and propagated unchanged.
	NaN
	// NegativeValue is surfaced by callables and propagated unchanged.
	NegativeValue
	// PositiveValue is surfaced by callables and propagated unchanged.
	PositiveValue
	// Zero is surfaced by callables and propagated unchanged.
	Zero
	// Other is an escape hatch for callable-specific failures.
	Other
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "expression is empty"
	case InvalidInput:
		return "invalid input"
	case InvalidExpression:
		return "invalid expression"
	case InvalidArgumentCount:
		return "invalid number of arguments"
	case DivisionByZero:
		return "cannot divide by zero"
	case Overflow:
		return "value has overflowed"
	case NaN:
		return "value is 'not a number'"
	case NegativeValue:
		return "value is negative"
	case PositiveValue:
		return "value is positive"
	case Zero:
		return "value is zero"
	case Other:
		return "other error"
	default:
		return "unknown error"
	}
}

// Error is the error type returned across the expression pipeline. It
// always carries a Kind and optionally wraps an inner error or message.
type Error struct {
	kind  Kind
	msg   string
	inner error
}

// New creates an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// FromKind creates an Error carrying only a Kind, using its default message.
func FromKind(kind Kind) *Error {
	return &Error{kind: kind}
}

// Wrap creates an Error of the given Kind wrapping an inner error.
func Wrap(kind Kind, inner error) *Error {
	return &Error{kind: kind, inner: inner}
}

// Kind returns the ErrorKind of this error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap exposes the inner error, if any, for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.inner
}

func (e *Error) Error() string {
	switch {
	case e.inner != nil:
		return e.inner.Error()
	case e.msg != "":
		return e.msg
	default:
		return e.kind.String()
	}
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, exprerr.FromKind(exprerr.Empty)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == other.kind
}
