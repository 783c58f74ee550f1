// Package decimalnum registers an arbitrary-precision decimal numeric
// kind, backed by github.com/shopspring/decimal.
package decimalnum

import (
	"github.com/shopspring/decimal"

	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

// ParseNumber parses a lexeme as a decimal.Decimal literal.
func ParseNumber(lexeme string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(lexeme)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func factorial(n decimal.Decimal) (decimal.Decimal, error) {
	if n.IsNegative() {
		return decimal.Decimal{}, exprerr.New(exprerr.NegativeValue, "factorial of a negative number")
	}
	if !n.Equal(n.Truncate(0)) {
		return decimal.Decimal{}, exprerr.New(exprerr.InvalidInput, "factorial requires an integer value")
	}

	result := decimal.NewFromInt(1)
	one := decimal.NewFromInt(1)
	for i := decimal.NewFromInt(1); i.LessThanOrEqual(n); i = i.Add(one) {
		result = result.Mul(i)
	}
	return result, nil
}

// NewContext builds a fresh Context over decimal.Decimal, registering
// the operators, unary forms and aggregate functions decimalnum exposes.
func NewContext() *exprcontext.DefaultContext[decimal.Decimal] {
	return NewContextWithConfig(exprcontext.NewConfig())
}

// NewContextWithConfig builds a fresh Context using the given Config.
func NewContextWithConfig(config exprcontext.Config) *exprcontext.DefaultContext[decimal.Decimal] {
	ctx := exprcontext.NewContextWithConfig[decimal.Decimal](config)

	ctx.AddConstant("PI", decimal.NewFromFloat(3.1415926535897932384626433833))
	ctx.AddConstant("E", decimal.NewFromFloat(2.7182818284590452353602874714))

	addBinary := func(name string, prec function.Precedence, fn func(l, r decimal.Decimal) (decimal.Decimal, error)) {
		ctx.AddBinaryOperator(function.NamedBinary[decimal.Decimal]{FuncName: name, Prec: prec, Assoc: function.Left, Fn: fn})
	}
	addBinary("+", function.Low, func(l, r decimal.Decimal) (decimal.Decimal, error) { return l.Add(r), nil })
	addBinary("-", function.Low, func(l, r decimal.Decimal) (decimal.Decimal, error) { return l.Sub(r), nil })
	addBinary("*", function.Medium, func(l, r decimal.Decimal) (decimal.Decimal, error) { return l.Mul(r), nil })
	addBinary("/", function.Medium, func(l, r decimal.Decimal) (decimal.Decimal, error) {
		if r.IsZero() {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.DivisionByZero)
		}
		return l.Div(r), nil
	})
	addBinary("mod", function.Medium, func(l, r decimal.Decimal) (decimal.Decimal, error) {
		if r.IsZero() {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.DivisionByZero)
		}
		return l.Mod(r), nil
	})
	ctx.AddBinaryOperator(function.NamedBinary[decimal.Decimal]{
		FuncName: "^", Prec: function.High, Assoc: function.Right,
		Fn: func(l, r decimal.Decimal) (decimal.Decimal, error) { return l.Pow(r), nil },
	})

	ctx.AddUnaryOperator(function.NamedUnary[decimal.Decimal]{
		FuncName: "+", Note: function.Prefix,
		Fn: func(v decimal.Decimal) (decimal.Decimal, error) { return v, nil },
	})
	ctx.AddUnaryOperator(function.NamedUnary[decimal.Decimal]{
		FuncName: "-", Note: function.Prefix,
		Fn: func(v decimal.Decimal) (decimal.Decimal, error) { return v.Neg(), nil },
	})
	ctx.AddUnaryOperator(function.NamedUnary[decimal.Decimal]{
		FuncName: "!", Note: function.Postfix, Fn: factorial,
	})

	addFunc := func(name string, fn func(args []decimal.Decimal) (decimal.Decimal, error)) {
		ctx.AddFunction(function.NamedFunc[decimal.Decimal]{FuncName: name, Fn: fn})
	}
	addFunc("Sum", func(args []decimal.Decimal) (decimal.Decimal, error) {
		sum := decimal.Zero
		for _, a := range args {
			sum = sum.Add(a)
		}
		return sum, nil
	})
	addFunc("Prod", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) == 0 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		prod := decimal.NewFromInt(1)
		for _, a := range args {
			prod = prod.Mul(a)
		}
		return prod, nil
	})
	addFunc("Avg", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) == 0 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		sum := decimal.Zero
		for _, a := range args {
			sum = sum.Add(a)
		}
		return sum.Div(decimal.NewFromInt(int64(len(args)))), nil
	})
	addFunc("Max", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) == 0 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		m := args[0]
		for _, a := range args[1:] {
			if a.GreaterThan(m) {
				m = a
			}
		}
		return m, nil
	})
	addFunc("Min", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) == 0 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		m := args[0]
		for _, a := range args[1:] {
			if a.LessThan(m) {
				m = a
			}
		}
		return m, nil
	})
	addFunc("Abs", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) != 1 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return args[0].Abs(), nil
	})
	addFunc("Sqrt", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) != 1 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		if args[0].IsNegative() {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.NegativeValue)
		}
		f, _ := args[0].Float64()
		return decimal.NewFromFloat(f).Pow(decimal.NewFromFloat(0.5)), nil
	})
	addFunc("Floor", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) != 1 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return args[0].Floor(), nil
	})
	addFunc("Ceil", func(args []decimal.Decimal) (decimal.Decimal, error) {
		if len(args) != 1 {
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return args[0].Ceil(), nil
	})
	addFunc("Round", func(args []decimal.Decimal) (decimal.Decimal, error) {
		switch len(args) {
		case 1:
			return args[0].Round(0), nil
		case 2:
			places, _ := args[1].Float64()
			return args[0].Round(int32(places)), nil
		default:
			return decimal.Decimal{}, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
	})

	return ctx
}

// NewEvaluator builds an Evaluator[decimal.Decimal] wired to a fresh
// decimalnum Context.
func NewEvaluator() *evaluator.Evaluator[decimal.Decimal] {
	return evaluator.New[decimal.Decimal](NewContext(), ParseNumber)
}
