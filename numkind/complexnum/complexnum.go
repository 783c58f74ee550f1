// Package complexnum registers a complex-number numeric kind, backed by
// Go's built-in complex128 and the standard math/cmplx package. It is
// the numeric kind exercising Config.ComplexNumber, the "5 + 3i"
// imaginary-literal splice the lexer performs.
package complexnum

import (
	"math/cmplx"
	"strconv"

	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

// ParseNumber parses a lexeme as a real float64 literal or, if suffixed
// with "i", a pure-imaginary literal (e.g. "3i" -> 0+3i). The lexer
// combines a preceding real literal with a following "i" lexeme into a
// single complex number when Config.ComplexNumber is enabled.
func ParseNumber(lexeme string) (complex128, bool) {
	if rest, ok := cutSuffixI(lexeme); ok {
		im, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false
		}
		return complex(0, im), true
	}

	re, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, false
	}
	return complex(re, 0), true
}

func cutSuffixI(lexeme string) (string, bool) {
	if len(lexeme) < 2 || lexeme[len(lexeme)-1] != 'i' {
		return "", false
	}
	return lexeme[:len(lexeme)-1], true
}

// NewContext builds a fresh Context over complex128, registering the
// arithmetic operators and Abs/Conj/Real/Imag functions complexnum
// exposes, with Config.ComplexNumber enabled.
func NewContext() *exprcontext.DefaultContext[complex128] {
	return NewContextWithConfig(exprcontext.NewConfig().WithComplexNumber(true))
}

// NewContextWithConfig builds a fresh Context using the given Config.
func NewContextWithConfig(config exprcontext.Config) *exprcontext.DefaultContext[complex128] {
	ctx := exprcontext.NewContextWithConfig[complex128](config)

	addBinary := func(name string, prec function.Precedence, assoc function.Associativity, fn func(l, r complex128) (complex128, error)) {
		ctx.AddBinaryOperator(function.NamedBinary[complex128]{FuncName: name, Prec: prec, Assoc: assoc, Fn: fn})
	}
	addBinary("+", function.Low, function.Left, func(l, r complex128) (complex128, error) { return l + r, nil })
	addBinary("-", function.Low, function.Left, func(l, r complex128) (complex128, error) { return l - r, nil })
	addBinary("*", function.Medium, function.Left, func(l, r complex128) (complex128, error) { return l * r, nil })
	addBinary("/", function.Medium, function.Left, func(l, r complex128) (complex128, error) {
		if r == 0 {
			return 0, exprerr.FromKind(exprerr.DivisionByZero)
		}
		return l / r, nil
	})
	addBinary("^", function.High, function.Right, func(l, r complex128) (complex128, error) { return cmplx.Pow(l, r), nil })

	ctx.AddUnaryOperator(function.NamedUnary[complex128]{
		FuncName: "+", Note: function.Prefix,
		Fn: func(v complex128) (complex128, error) { return v, nil },
	})
	ctx.AddUnaryOperator(function.NamedUnary[complex128]{
		FuncName: "-", Note: function.Prefix,
		Fn: func(v complex128) (complex128, error) { return -v, nil },
	})

	ctx.AddFunction(function.NamedFunc[complex128]{FuncName: "Abs", Fn: func(args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return complex(cmplx.Abs(args[0]), 0), nil
	}})
	ctx.AddFunction(function.NamedFunc[complex128]{FuncName: "Conj", Fn: func(args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return cmplx.Conj(args[0]), nil
	}})
	ctx.AddFunction(function.NamedFunc[complex128]{FuncName: "Real", Fn: func(args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return complex(real(args[0]), 0), nil
	}})
	ctx.AddFunction(function.NamedFunc[complex128]{FuncName: "Imag", Fn: func(args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, exprerr.FromKind(exprerr.InvalidArgumentCount)
		}
		return complex(imag(args[0]), 0), nil
	}})

	return ctx
}

// NewEvaluator builds an Evaluator[complex128] wired to a fresh
// complexnum Context.
func NewEvaluator() *evaluator.Evaluator[complex128] {
	return evaluator.New[complex128](NewContext(), ParseNumber)
}
