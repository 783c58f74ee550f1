package lexer

import (
	"strconv"
	"testing"

	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
	"github.com/Neo-Ciber94/prexel-go/pkg/token"
)

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func testContext() *exprcontext.DefaultContext[float64] {
	ctx := exprcontext.NewContext[float64]()
	ctx.AddConstant("PI", 3.14159265)
	ctx.AddConstant("E", 2.71828182)

	ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: "+", Prec: function.Low, Assoc: function.Left, Fn: func(l, r float64) (float64, error) { return l + r, nil }})
	ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: "-", Prec: function.Low, Assoc: function.Left, Fn: func(l, r float64) (float64, error) { return l - r, nil }})
	ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: "*", Prec: function.Medium, Assoc: function.Left, Fn: func(l, r float64) (float64, error) { return l * r, nil }})
	ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: "/", Prec: function.Medium, Assoc: function.Left, Fn: func(l, r float64) (float64, error) { return l / r, nil }})
	ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: "^", Prec: function.High, Assoc: function.Right, Fn: func(l, r float64) (float64, error) { return l, nil }})
	ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: "mod", Prec: function.Medium, Assoc: function.Left, Fn: func(l, r float64) (float64, error) { return l, nil }})

	ctx.AddUnaryOperator(function.NamedUnary[float64]{FuncName: "+", Note: function.Prefix, Fn: func(v float64) (float64, error) { return v, nil }})
	ctx.AddUnaryOperator(function.NamedUnary[float64]{FuncName: "-", Note: function.Prefix, Fn: func(v float64) (float64, error) { return -v, nil }})
	ctx.AddUnaryOperator(function.NamedUnary[float64]{FuncName: "!", Note: function.Postfix, Fn: func(v float64) (float64, error) { return v, nil }})

	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "Sin", Fn: func(args []float64) (float64, error) { return args[0], nil }})

	return ctx
}

func TestTokenizeSimpleExpression(t *testing.T) {
	l := New[float64](testContext(), parseFloat)

	got, err := l.Tokenize("2 + 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Token[float64]{
		token.NewNumber(2.0),
		token.NewBinaryOperator[float64]("+"),
		token.NewNumber(3.0),
	}
	assertTokensEqual(t, got, want)
}

func TestTokenizeFunctionCall(t *testing.T) {
	l := New[float64](testContext(), parseFloat)

	got, err := l.Tokenize("5 * Sin(PI)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Token[float64]{
		token.NewNumber(5.0),
		token.NewBinaryOperator[float64]("*"),
		token.NewFunction[float64]("Sin"),
		token.NewGroupingOpen[float64]('('),
		token.NewConstant[float64]("PI"),
		token.NewGroupingClose[float64](')'),
	}
	assertTokensEqual(t, got, want)
}

func TestTokenizeUnaryPrefixAtStart(t *testing.T) {
	l := New[float64](testContext(), parseFloat)

	got, err := l.Tokenize("-10 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Token[float64]{
		token.NewUnaryOperator[float64]("-"),
		token.NewNumber(10.0),
		token.NewBinaryOperator[float64]("+"),
		token.NewNumber(2.0),
	}
	assertTokensEqual(t, got, want)
}

func TestTokenizePostfixFactorial(t *testing.T) {
	l := New[float64](testContext(), parseFloat)

	got, err := l.Tokenize("10! + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Token[float64]{
		token.NewNumber(10.0),
		token.NewUnaryOperator[float64]("!"),
		token.NewBinaryOperator[float64]("+"),
		token.NewNumber(2.0),
	}
	assertTokensEqual(t, got, want)
}

func TestTokenizeEmptyExpressionErrors(t *testing.T) {
	l := New[float64](testContext(), parseFloat)

	if _, err := l.Tokenize("   "); err == nil {
		t.Fatal("expected error for blank expression")
	}
}

func TestTokenizeUnknownSymbol(t *testing.T) {
	l := New[float64](testContext(), parseFloat)

	got, err := l.Tokenize("2 @ 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got[1].IsUnknown() {
		t.Fatalf("expected unknown token for '@', got %v", got[1])
	}
}

func assertTokensEqual(t *testing.T, got, want []token.Token[float64]) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
