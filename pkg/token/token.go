// Package token defines the tagged-union Token produced by the lexer and
// consumed by the shunting-yard converter and the evaluator.
package token

import "fmt"

// Kind discriminates which field of a Token is populated.
type Kind int

const (
	// Number holds a parsed numeric literal in Value.
	Number Kind = iota
	// Variable holds a variable name in Name.
	Variable
	// Constant holds a constant name in Name.
	Constant
	// Function holds a function name in Name.
	Function
	// BinaryOperator holds an operator symbol in Name.
	BinaryOperator
	// UnaryOperator holds an operator symbol in Name.
	UnaryOperator
	// ArgCount holds a function call's argument count in Count. It is
	// inserted by the shunting-yard converter, never produced by the lexer.
	ArgCount
	// GroupingOpen holds an open grouping symbol, e.g. '(', in Symbol.
	GroupingOpen
	// GroupingClose holds a close grouping symbol, e.g. ')', in Symbol.
	GroupingClose
	// Unknown holds a lexeme that is neither a number nor resolvable
	// against the Context in Name.
	Unknown
	// Comma separates function arguments. Carries no payload.
	Comma
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	case Function:
		return "Function"
	case BinaryOperator:
		return "BinaryOperator"
	case UnaryOperator:
		return "UnaryOperator"
	case ArgCount:
		return "ArgCount"
	case GroupingOpen:
		return "GroupingOpen"
	case GroupingClose:
		return "GroupingClose"
	case Unknown:
		return "Unknown"
	case Comma:
		return "Comma"
	default:
		return "Invalid"
	}
}

// Token is the tagged-union value produced by the lexer: Kind selects
// which of Value/Name/Count/Symbol is meaningful. This mirrors the
// teacher's Token{Type, Value, Line, Column} shape, generalized with a
// type parameter for the numeric payload.
type Token[N any] struct {
	Kind   Kind
	Value  N      // populated when Kind == Number
	Name   string // populated when Kind is Variable/Constant/Function/BinaryOperator/UnaryOperator/Unknown
	Count  int    // populated when Kind == ArgCount
	Symbol rune   // populated when Kind is GroupingOpen/GroupingClose
}

// NewNumber creates a Number token.
func NewNumber[N any](value N) Token[N] { return Token[N]{Kind: Number, Value: value} }

// NewVariable creates a Variable token.
func NewVariable[N any](name string) Token[N] { return Token[N]{Kind: Variable, Name: name} }

// NewConstant creates a Constant token.
func NewConstant[N any](name string) Token[N] { return Token[N]{Kind: Constant, Name: name} }

// NewFunction creates a Function token.
func NewFunction[N any](name string) Token[N] { return Token[N]{Kind: Function, Name: name} }

// NewBinaryOperator creates a BinaryOperator token.
func NewBinaryOperator[N any](symbol string) Token[N] {
	return Token[N]{Kind: BinaryOperator, Name: symbol}
}

// NewUnaryOperator creates a UnaryOperator token.
func NewUnaryOperator[N any](symbol string) Token[N] {
	return Token[N]{Kind: UnaryOperator, Name: symbol}
}

// NewArgCount creates an ArgCount token, inserted by the shunting-yard
// converter to record how many arguments a function call received.
func NewArgCount[N any](count int) Token[N] { return Token[N]{Kind: ArgCount, Count: count} }

// NewGroupingOpen creates a GroupingOpen token.
func NewGroupingOpen[N any](symbol rune) Token[N] {
	return Token[N]{Kind: GroupingOpen, Symbol: symbol}
}

// NewGroupingClose creates a GroupingClose token.
func NewGroupingClose[N any](symbol rune) Token[N] {
	return Token[N]{Kind: GroupingClose, Symbol: symbol}
}

// NewUnknown creates an Unknown token for a lexeme that could not be
// resolved against the Context.
func NewUnknown[N any](lexeme string) Token[N] { return Token[N]{Kind: Unknown, Name: lexeme} }

// NewComma creates a Comma token.
func NewComma[N any]() Token[N] { return Token[N]{Kind: Comma} }

// IsNumber reports whether this is a Number token.
func (t Token[N]) IsNumber() bool { return t.Kind == Number }

// IsVariable reports whether this is a Variable token.
func (t Token[N]) IsVariable() bool { return t.Kind == Variable }

// IsConstant reports whether this is a Constant token.
func (t Token[N]) IsConstant() bool { return t.Kind == Constant }

// IsFunction reports whether this is a Function token.
func (t Token[N]) IsFunction() bool { return t.Kind == Function }

// IsUnaryOperator reports whether this is a UnaryOperator token.
func (t Token[N]) IsUnaryOperator() bool { return t.Kind == UnaryOperator }

// IsBinaryOperator reports whether this is a BinaryOperator token.
func (t Token[N]) IsBinaryOperator() bool { return t.Kind == BinaryOperator }

// IsArgCount reports whether this token records an argument count.
func (t Token[N]) IsArgCount() bool { return t.Kind == ArgCount }

// IsGroupingOpen reports whether this is a GroupingOpen token.
func (t Token[N]) IsGroupingOpen() bool { return t.Kind == GroupingOpen }

// IsGroupingClose reports whether this is a GroupingClose token.
func (t Token[N]) IsGroupingClose() bool { return t.Kind == GroupingClose }

// IsComma reports whether this is a Comma token.
func (t Token[N]) IsComma() bool { return t.Kind == Comma }

// IsUnknown reports whether this token failed resolution against the
// Context (it is neither a number nor found in any symbol table).
func (t Token[N]) IsUnknown() bool { return t.Kind == Unknown }

// ContainsSymbol reports whether this is a grouping token carrying the
// given symbol rune.
func (t Token[N]) ContainsSymbol(symbol rune) bool {
	switch t.Kind {
	case GroupingOpen, GroupingClose:
		return t.Symbol == symbol
	default:
		return false
	}
}

// String renders the token for diagnostics, e.g. "Number(3.5)" or
// "BinaryOperator(+)".
func (t Token[N]) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%v)", t.Value)
	case Variable:
		return fmt.Sprintf("Variable(%s)", t.Name)
	case Constant:
		return fmt.Sprintf("Constant(%s)", t.Name)
	case Function:
		return fmt.Sprintf("Function(%s)", t.Name)
	case BinaryOperator:
		return fmt.Sprintf("BinaryOperator(%s)", t.Name)
	case UnaryOperator:
		return fmt.Sprintf("UnaryOperator(%s)", t.Name)
	case ArgCount:
		return fmt.Sprintf("ArgCount(%d)", t.Count)
	case GroupingOpen:
		return fmt.Sprintf("GroupingOpen(%c)", t.Symbol)
	case GroupingClose:
		return fmt.Sprintf("GroupingClose(%c)", t.Symbol)
	case Unknown:
		return fmt.Sprintf("Unknown(%s)", t.Name)
	case Comma:
		return "Comma"
	default:
		return "Invalid"
	}
}
