// Package floatnum registers an IEEE 754 binary-float numeric kind,
// backed by float64 and the standard math package.
package floatnum

import (
	"math"
	"strconv"

	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

// ParseNumber parses a lexeme as a float64 literal.
func ParseNumber(lexeme string) (float64, bool) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func unary1(ctx *exprcontext.DefaultContext[float64], name string, fn func(float64) float64) {
	ctx.AddFunction(function.NamedFunc[float64]{
		FuncName: name,
		Fn: func(args []float64) (float64, error) {
			if len(args) != 1 {
				return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
			}
			return fn(args[0]), nil
		},
	})
}

// NewContext builds a fresh Context over float64, registering the
// arithmetic operators plus the trigonometric, hyperbolic and aggregate
// function families floatnum exposes.
func NewContext() *exprcontext.DefaultContext[float64] {
	return NewContextWithConfig(exprcontext.NewConfig())
}

// NewContextWithConfig builds a fresh Context using the given Config.
func NewContextWithConfig(config exprcontext.Config) *exprcontext.DefaultContext[float64] {
	ctx := exprcontext.NewContextWithConfig[float64](config)

	ctx.AddConstant("PI", math.Pi)
	ctx.AddConstant("E", math.E)

	addBinary := func(name string, prec function.Precedence, assoc function.Associativity, fn func(l, r float64) (float64, error)) {
		ctx.AddBinaryOperator(function.NamedBinary[float64]{FuncName: name, Prec: prec, Assoc: assoc, Fn: fn})
	}
	addBinary("+", function.Low, function.Left, func(l, r float64) (float64, error) { return l + r, nil })
	addBinary("-", function.Low, function.Left, func(l, r float64) (float64, error) { return l - r, nil })
	addBinary("*", function.Medium, function.Left, func(l, r float64) (float64, error) { return l * r, nil })
	addBinary("/", function.Medium, function.Left, func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, exprerr.FromKind(exprerr.DivisionByZero)
		}
		return l / r, nil
	})
	addBinary("mod", function.Medium, function.Left, func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, exprerr.FromKind(exprerr.DivisionByZero)
		}
		return math.Mod(l, r), nil
	})
	addBinary("^", function.High, function.Right, func(l, r float64) (float64, error) { return math.Pow(l, r), nil })

	ctx.AddUnaryOperator(function.NamedUnary[float64]{
		FuncName: "+", Note: function.Prefix,
		Fn: func(v float64) (float64, error) { return v, nil },
	})
	ctx.AddUnaryOperator(function.NamedUnary[float64]{
		FuncName: "-", Note: function.Prefix,
		Fn: func(v float64) (float64, error) { return -v, nil },
	})
	ctx.AddUnaryOperator(function.NamedUnary[float64]{
		FuncName: "!", Note: function.Postfix,
		Fn: func(v float64) (float64, error) {
			if v < 0 {
				return 0, exprerr.FromKind(exprerr.NegativeValue)
			}
			return math.Gamma(v + 1), nil
		},
	})

	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "Sum", Fn: func(args []float64) (float64, error) {
		var sum float64
		for _, a := range args {
			sum += a
		}
		return sum, nil
	}})
	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "Prod", Fn: func(args []float64) (float64, error) {
		if len(args) == 0 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		prod := 1.0
		for _, a := range args {
			prod *= a
		}
		return prod, nil
	}})
	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "Avg", Fn: func(args []float64) (float64, error) {
		if len(args) == 0 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		var sum float64
		for _, a := range args {
			sum += a
		}
		return sum / float64(len(args)), nil
	}})
	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "Max", Fn: func(args []float64) (float64, error) {
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
	ctx.AddFunction(function.NamedFunc[float64]{FuncName: "Min", Fn: func(args []float64) (float64, error) {
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

	unary1(ctx, "Abs", math.Abs)
	unary1(ctx, "Sqrt", math.Sqrt)
	unary1(ctx, "Cbrt", math.Cbrt)
	unary1(ctx, "Ln", math.Log)
	unary1(ctx, "Log", math.Log10)
	unary1(ctx, "Exp", math.Exp)
	unary1(ctx, "Floor", math.Floor)
	unary1(ctx, "Ceil", math.Ceil)
	unary1(ctx, "Truncate", math.Trunc)
	unary1(ctx, "ToRadians", func(v float64) float64 { return v * math.Pi / 180 })
	unary1(ctx, "ToDegrees", func(v float64) float64 { return v * 180 / math.Pi })

	unary1(ctx, "Sin", math.Sin)
	unary1(ctx, "Cos", math.Cos)
	unary1(ctx, "Tan", math.Tan)
	unary1(ctx, "Csc", func(v float64) float64 { return 1 / math.Sin(v) })
	unary1(ctx, "Sec", func(v float64) float64 { return 1 / math.Cos(v) })
	unary1(ctx, "Cot", func(v float64) float64 { return 1 / math.Tan(v) })
	unary1(ctx, "ASin", math.Asin)
	unary1(ctx, "ACos", math.Acos)
	unary1(ctx, "ATan", math.Atan)
	unary1(ctx, "ACsc", func(v float64) float64 { return math.Asin(1 / v) })
	unary1(ctx, "ASec", func(v float64) float64 { return math.Acos(1 / v) })
	unary1(ctx, "ACot", func(v float64) float64 { return math.Atan(1 / v) })

	unary1(ctx, "Sinh", math.Sinh)
	unary1(ctx, "Cosh", math.Cosh)
	unary1(ctx, "Tanh", math.Tanh)
	unary1(ctx, "Csch", func(v float64) float64 { return 1 / math.Sinh(v) })
	unary1(ctx, "Sech", func(v float64) float64 { return 1 / math.Cosh(v) })
	unary1(ctx, "Coth", func(v float64) float64 { return 1 / math.Tanh(v) })
	unary1(ctx, "ASinh", math.Asinh)
	unary1(ctx, "ACosh", math.Acosh)
	unary1(ctx, "ATanh", math.Atanh)
	unary1(ctx, "ACsch", func(v float64) float64 { return math.Asinh(1 / v) })
	unary1(ctx, "ASech", func(v float64) float64 { return math.Acosh(1 / v) })
	unary1(ctx, "ACoth", func(v float64) float64 { return math.Atanh(1 / v) })

	return ctx
}

// NewEvaluator builds an Evaluator[float64] wired to a fresh floatnum Context.
func NewEvaluator() *evaluator.Evaluator[float64] {
	return evaluator.New[float64](NewContext(), ParseNumber)
}
