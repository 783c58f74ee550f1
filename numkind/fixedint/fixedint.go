// Package fixedint registers a fixed-width checked-integer numeric
// kind, backed by int64 with overflow detection via math/bits.
package fixedint

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

// ParseNumber parses a lexeme as an int64 literal.
func ParseNumber(lexeme string) (int64, bool) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func checkedAdd(l, r int64) (int64, error) {
	sum := l + r
	if (r > 0 && sum < l) || (r < 0 && sum > l) {
		return 0, exprerr.FromKind(exprerr.Overflow)
	}
	return sum, nil
}

func checkedSub(l, r int64) (int64, error) {
	diff := l - r
	if (r < 0 && diff < l) || (r > 0 && diff > l) {
		return 0, exprerr.FromKind(exprerr.Overflow)
	}
	return diff, nil
}

func checkedMul(l, r int64) (int64, error) {
	if l == 0 || r == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(absUint64(l), absUint64(r))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, exprerr.FromKind(exprerr.Overflow)
	}
	product := int64(lo)
	if (l < 0) != (r < 0) {
		product = -product
	}
	return product, nil
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func checkedDiv(l, r int64) (int64, error) {
	if r == 0 {
		return 0, exprerr.FromKind(exprerr.DivisionByZero)
	}
	if l == math.MinInt64 && r == -1 {
		return 0, exprerr.FromKind(exprerr.Overflow)
	}
	return l / r, nil
}

func checkedMod(l, r int64) (int64, error) {
	if r == 0 {
		return 0, exprerr.FromKind(exprerr.DivisionByZero)
	}
	return l % r, nil
}

func checkedPow(l, r int64) (int64, error) {
	if r < 0 {
		return 0, exprerr.New(exprerr.InvalidInput, "exponent must be non-negative")
	}
	result := int64(1)
	for i := int64(0); i < r; i++ {
		next, err := checkedMul(result, l)
		if err != nil {
			return 0, err
		}
		result = next
	}
	return result, nil
}

// NewContext builds a fresh Context over int64, registering the checked
// arithmetic operators and aggregate functions fixedint exposes.
func NewContext() *exprcontext.DefaultContext[int64] {
	return NewContextWithConfig(exprcontext.NewConfig())
}

// NewContextWithConfig builds a fresh Context using the given Config.
func NewContextWithConfig(config exprcontext.Config) *exprcontext.DefaultContext[int64] {
	ctx := exprcontext.NewContextWithConfig[int64](config)

	addBinary := func(name string, prec function.Precedence, assoc function.Associativity, fn func(l, r int64) (int64, error)) {
		ctx.AddBinaryOperator(function.NamedBinary[int64]{FuncName: name, Prec: prec, Assoc: assoc, Fn: fn})
	}
	addBinary("+", function.Low, function.Left, checkedAdd)
	addBinary("-", function.Low, function.Left, checkedSub)
	addBinary("*", function.Medium, function.Left, checkedMul)
	addBinary("/", function.Medium, function.Left, checkedDiv)
	addBinary("mod", function.Medium, function.Left, checkedMod)
	addBinary("^", function.High, function.Right, checkedPow)

	ctx.AddUnaryOperator(function.NamedUnary[int64]{
		FuncName: "+", Note: function.Prefix,
		Fn: func(v int64) (int64, error) { return v, nil },
	})
	ctx.AddUnaryOperator(function.NamedUnary[int64]{
		FuncName: "-", Note: function.Prefix,
		Fn: func(v int64) (int64, error) {
			if v == math.MinInt64 {
				return 0, exprerr.FromKind(exprerr.Overflow)
			}
			return -v, nil
		},
	})

	ctx.AddFunction(function.NamedFunc[int64]{FuncName: "Sum", Fn: func(args []int64) (int64, error) {
		var sum int64
		var err error
		for _, a := range args {
			if sum, err = checkedAdd(sum, a); err != nil {
				return 0, err
			}
		}
		return sum, nil
	}})
	ctx.AddFunction(function.NamedFunc[int64]{FuncName: "Max", Fn: func(args []int64) (int64, error) {
		if len(args) == 0 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		m := args[0]
		for _, a := range args[1:] {
			if a > m {
				m = a
			}
		}
		return m, nil
	}})
	ctx.AddFunction(function.NamedFunc[int64]{FuncName: "Min", Fn: func(args []int64) (int64, error) {
		if len(args) == 0 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		m := args[0]
		for _, a := range args[1:] {
			if a < m {
				m = a
			}
		}
		return m, nil
	}})
	ctx.AddFunction(function.NamedFunc[int64]{FuncName: "Abs", Fn: func(args []int64) (int64, error) {
		if len(args) != 1 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		if args[0] == math.MinInt64 {
			return 0, exprerr.FromKind(exprerr.Overflow)
		}
		if args[0] < 0 {
			return -args[0], nil
		}
		return args[0], nil
	}})

	return ctx
}

// NewEvaluator builds an Evaluator[int64] wired to a fresh fixedint Context.
func NewEvaluator() *evaluator.Evaluator[int64] {
	return evaluator.New[int64](NewContext(), ParseNumber)
}
