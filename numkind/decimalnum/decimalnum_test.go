package decimalnum

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvalArithmetic(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("3 + 2 * 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(13)) {
		t.Fatalf("expected 13, got %s", got)
	}
}

func TestEvalDivisionByZeroErrors(t *testing.T) {
	e := NewEvaluator()

	if _, err := e.Eval("1 / 0"); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvalFactorial(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("5!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected 120, got %s", got)
	}
}

func TestEvalAggregateFunctions(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("Max(1, 5, 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected 5, got %s", got)
	}

	got, err = e.Eval("Sum(1, 2, 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("expected 6, got %s", got)
	}
}

func TestEvalSumWithNoArguments(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("Sum()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.Zero) {
		t.Fatalf("expected 0, got %s", got)
	}
}

func TestEvalRound(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("Round(3.456, 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromFloat(3.46)) {
		t.Fatalf("expected 3.46, got %s", got)
	}
}
