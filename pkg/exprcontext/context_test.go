package exprcontext

import (
	"testing"

	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

func TestConfigGroupSymbols(t *testing.T) {
	config := Config{}.WithGroupSymbol('(', ')').WithGroupSymbol('[', ']')

	if close, ok := config.GroupCloseFor('('); !ok || close != ')' {
		t.Fatalf("expected ')' for '(', got %q (ok=%v)", close, ok)
	}
	if open, ok := config.GroupOpenFor(']'); !ok || open != '[' {
		t.Fatalf("expected '[' for ']', got %q (ok=%v)", open, ok)
	}
	if !config.IsGroupOpen('(') || !config.IsGroupClose(')') {
		t.Fatalf("expected '(' open and ')' close")
	}
	if config.IsGroupOpen(')') {
		t.Fatalf("')' should not be an open symbol")
	}
}

func TestConfigWithGroupSymbolPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate grouping symbol")
		}
	}()
	Config{}.WithGroupSymbol('(', ')').WithGroupSymbol('(', ']')
}

func TestContextConstantsAreCaseInsensitive(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.AddConstant("PI", 3.14159)

	if v, ok := ctx.GetConstant("pi"); !ok || v != 3.14159 {
		t.Fatalf("expected case-insensitive constant lookup, got %v (ok=%v)", v, ok)
	}
	if !ctx.IsConstant("Pi") {
		t.Fatal("expected IsConstant true for 'Pi'")
	}
}

func TestContextVariablesAreCaseSensitive(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.SetVariable("x", 5)

	if !ctx.IsVariable("x") {
		t.Fatal("expected 'x' to be a variable")
	}
	if ctx.IsVariable("X") {
		t.Fatal("expected 'X' to NOT match case-sensitive variable 'x'")
	}
}

func TestAddConstantPanicsWhenVariableExists(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.SetVariable("x", 1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when registering a constant shadowing a variable")
		}
	}()
	ctx.AddConstant("x", 2)
}

func TestSetVariablePanicsWhenConstantExists(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.AddConstant("E", 2.71828)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when setting a variable shadowing a constant")
		}
	}()
	ctx.SetVariable("e", 1)
}

type dummyBinary struct{ name string }

func (d dummyBinary) Name() string                          { return d.name }
func (d dummyBinary) Precedence() function.Precedence       { return function.Low }
func (d dummyBinary) Associativity() function.Associativity { return function.Left }
func (d dummyBinary) Call(l, r float64) (float64, error)    { return l + r, nil }

func TestAddBinaryOperatorAsAlias(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.AddBinaryOperator(dummyBinary{name: "+"})
	ctx.AddBinaryOperatorAs(dummyBinary{name: "+"}, "Plus")

	if !ctx.IsBinaryOperator("+") {
		t.Fatal("expected '+' registered")
	}
	if !ctx.IsBinaryOperator("plus") {
		t.Fatal("expected alias 'Plus' registered case-insensitively")
	}
}

func TestAddFunctionPanicsOnDuplicate(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "sum", Fn: func(a []float64) (float64, error) { return 0, nil }})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate function registration")
		}
	}()
	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "SUM", Fn: func(a []float64) (float64, error) { return 0, nil }})
}

func TestAddConstantPanicsOnDuplicate(t *testing.T) {
	ctx := NewContext[float64]()
	ctx.AddConstant("PI", 3.14)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate constant registration")
		}
	}()
	ctx.AddConstant("pi", 3.14159)
}
