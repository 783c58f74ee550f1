package userfunc

import (
	"strconv"
	"testing"

	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

type stringableFloat float64

func (f stringableFloat) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func parseStringableFloat(s string) (stringableFloat, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return stringableFloat(v), true
}

func newEvaluator() *evaluator.Evaluator[stringableFloat] {
	ctx := exprcontext.NewContext[stringableFloat]()
	add := func(name string, prec function.Precedence, fn func(l, r stringableFloat) (stringableFloat, error)) {
		ctx.AddBinaryOperator(function.NamedBinary[stringableFloat]{FuncName: name, Prec: prec, Assoc: function.Left, Fn: fn})
	}
	add("+", function.Low, func(l, r stringableFloat) (stringableFloat, error) { return l + r, nil })
	add("*", function.Medium, func(l, r stringableFloat) (stringableFloat, error) { return l * r, nil })
	return evaluator.New[stringableFloat](ctx, parseStringableFloat)
}

func TestParseValidDefinition(t *testing.T) {
	eval := newEvaluator()

	fn, err := Parse(eval, "Add2(x) = x + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn.Name() != "Add2" {
		t.Fatalf("expected name Add2, got %s", fn.Name())
	}
	if len(fn.Params()) != 1 || fn.Params()[0] != "x" {
		t.Fatalf("expected params [x], got %v", fn.Params())
	}
}

func TestCallSubstitutesArgs(t *testing.T) {
	eval := newEvaluator()
	fn, err := Parse(eval, "Add2(x) = x + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := fn.Call([]stringableFloat{4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
}

func TestParseRejectsEmptyDefinition(t *testing.T) {
	if _, err := Parse(newEvaluator(), ""); err == nil {
		t.Fatal("expected error for empty definition")
	}
}

func TestParseRejectsBodyReferencingUnknownName(t *testing.T) {
	if _, err := Parse(newEvaluator(), "Get(x) = y"); err == nil {
		t.Fatal("expected error when body references an unbound name")
	}
}

func TestParseRejectsMissingEquals(t *testing.T) {
	if _, err := Parse(newEvaluator(), "Misplace(x"); err == nil {
		t.Fatal("expected error for missing '='")
	}
}

func TestParseRejectsDuplicateParams(t *testing.T) {
	if _, err := Parse(newEvaluator(), "Sum(x, x) = x + x"); err == nil {
		t.Fatal("expected error for duplicated parameter")
	}
}

func TestParseRejectsUnusedParam(t *testing.T) {
	if _, err := Parse(newEvaluator(), "Sum(x1, x2) = x1"); err == nil {
		t.Fatal("expected error for unused parameter")
	}
}

func TestParseAcceptsZeroArgFunction(t *testing.T) {
	fn, err := Parse(newEvaluator(), "GetOne() = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fn.Call(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestParseAcceptsMultiArgFunction(t *testing.T) {
	fn, err := Parse(newEvaluator(), "Sum(x1, x2, x3) = (x1 + x2) * x3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fn.Call([]stringableFloat{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
}
