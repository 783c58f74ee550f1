package function

import "testing"

func TestNamedFuncCallsUnderlying(t *testing.T) {
	sum := NamedFunc[int]{
		FuncName: "sum",
		Fn: func(args []int) (int, error) {
			total := 0
			for _, a := range args {
				total += a
			}
			return total, nil
		},
	}

	if sum.Name() != "sum" {
		t.Fatalf("expected name sum, got %s", sum.Name())
	}

	got, err := sum.Call([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestNamedUnaryNotation(t *testing.T) {
	neg := NamedUnary[int]{
		FuncName: "neg",
		Note:     Prefix,
		Fn:       func(v int) (int, error) { return -v, nil },
	}

	if neg.Notation() != Prefix {
		t.Fatalf("expected prefix notation")
	}
	got, _ := neg.Call(5)
	if got != -5 {
		t.Fatalf("expected -5, got %d", got)
	}
}

func TestNamedBinaryPrecedenceAndAssociativity(t *testing.T) {
	add := NamedBinary[int]{
		FuncName: "+",
		Prec:     Low,
		Assoc:    Left,
		Fn:       func(l, r int) (int, error) { return l + r, nil },
	}

	if add.Precedence() != Low {
		t.Fatalf("expected Low precedence")
	}
	if add.Associativity() != Left {
		t.Fatalf("expected Left associativity")
	}
	got, _ := add.Call(2, 3)
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestAssociativityString(t *testing.T) {
	if Left.String() != "left" {
		t.Fatalf("expected 'left', got %s", Left.String())
	}
	if Right.String() != "right" {
		t.Fatalf("expected 'right', got %s", Right.String())
	}
}

func TestNotationString(t *testing.T) {
	if Prefix.String() != "prefix" {
		t.Fatalf("expected 'prefix', got %s", Prefix.String())
	}
	if Postfix.String() != "postfix" {
		t.Fatalf("expected 'postfix', got %s", Postfix.String())
	}
}
