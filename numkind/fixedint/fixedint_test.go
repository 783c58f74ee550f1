package fixedint

import (
	"testing"
)

func TestEvalArithmetic(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("3 + 2 * 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 13 {
		t.Fatalf("expected 13, got %v", got)
	}
}

func TestEvalOverflowErrors(t *testing.T) {
	e := NewEvaluator()

	expr := "9223372036854775807 + 1"
	if _, err := e.Eval(expr); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestEvalMulOverflowErrors(t *testing.T) {
	e := NewEvaluator()

	if _, err := e.Eval("9223372036854775807 * 2"); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestCheckedMulRegularCase(t *testing.T) {
	got, err := checkedMul(6, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestEvalDivisionByZeroErrors(t *testing.T) {
	e := NewEvaluator()

	if _, err := e.Eval("1 / 0"); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvalAbs(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Eval("Abs(-5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestAbsOfMinIntOverflows(t *testing.T) {
	e := NewEvaluator()

	if _, err := e.Eval("Abs(-9223372036854775807 - 1)"); err == nil {
		t.Fatal("expected overflow error for Abs(MinInt64)")
	}
}
