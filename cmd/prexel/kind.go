package main

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Neo-Ciber94/prexel-go/numkind/binarynum"
	"github.com/Neo-Ciber94/prexel-go/numkind/complexnum"
	"github.com/Neo-Ciber94/prexel-go/numkind/decimalnum"
	"github.com/Neo-Ciber94/prexel-go/numkind/fixedint"
	"github.com/Neo-Ciber94/prexel-go/numkind/floatnum"
	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
)

// kindEvaluator erases the numeric type parameter behind a uniform
// surface so the CLI can pick a numeric kind at runtime from a flag,
// something Go's generics cannot do directly.
type kindEvaluator interface {
	Eval(expression string) (string, error)
	// SetVariable evaluates expression and stores the result under name
	// in the shared Context, returning the same display string Eval would.
	SetVariable(name, expression string) (string, error)
	Functions() []string
	Constants() []string
}

type genericKindEvaluator[N any] struct {
	eval *evaluator.Evaluator[N]
	ctx  exprcontext.Context[N]
}

func (g genericKindEvaluator[N]) Eval(expression string) (string, error) {
	result, err := g.eval.Eval(expression)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", result), nil
}

func (g genericKindEvaluator[N]) SetVariable(name, expression string) (string, error) {
	value, err := g.eval.Eval(expression)
	if err != nil {
		return "", err
	}
	g.ctx.SetVariable(name, value)
	return fmt.Sprintf("%v", value), nil
}

func (g genericKindEvaluator[N]) Functions() []string {
	dc, ok := g.ctx.(interface{ FunctionNames() []string })
	if !ok {
		return nil
	}
	return dc.FunctionNames()
}

func (g genericKindEvaluator[N]) Constants() []string {
	dc, ok := g.ctx.(interface{ ConstantNames() []string })
	if !ok {
		return nil
	}
	return dc.ConstantNames()
}

// resolveKind builds the Context and Evaluator for one of the five
// supported numeric kinds, always with implicit multiplication enabled
// (mirroring `Config::new().with_implicit_mul(true)` in every
// commands::EvalCommand/RunCommand branch of the original CLI).
func resolveKind(name string) (kindEvaluator, error) {
	switch strings.ToLower(name) {
	case "decimal", "":
		ctx := decimalnum.NewContextWithConfig(exprcontext.NewConfig().WithImplicitMul(true))
		return genericKindEvaluator[decimal.Decimal]{eval: evaluator.New[decimal.Decimal](ctx, decimalnum.ParseNumber), ctx: ctx}, nil
	case "float":
		ctx := floatnum.NewContextWithConfig(exprcontext.NewConfig().WithImplicitMul(true))
		return genericKindEvaluator[float64]{eval: evaluator.New[float64](ctx, floatnum.ParseNumber), ctx: ctx}, nil
	case "fixed":
		ctx := fixedint.NewContextWithConfig(exprcontext.NewConfig().WithImplicitMul(true))
		return genericKindEvaluator[int64]{eval: evaluator.New[int64](ctx, fixedint.ParseNumber), ctx: ctx}, nil
	case "complex":
		config := exprcontext.NewConfig().WithImplicitMul(true).WithComplexNumber(true)
		ctx := complexnum.NewContextWithConfig(config)
		return genericKindEvaluator[complex128]{eval: evaluator.New[complex128](ctx, complexnum.ParseNumber), ctx: ctx}, nil
	case "binary":
		config := exprcontext.NewConfig().WithImplicitMul(true)
		ctx := binarynum.NewContextWithConfig(config)
		return genericKindEvaluator[*big.Int]{
			eval: evaluator.WithSplitter[*big.Int](ctx, binarynum.Splitter(), binarynum.ParseNumber),
			ctx:  ctx,
		}, nil
	default:
		return nil, fmt.Errorf("unknown numeric kind %q, expected one of: decimal, float, fixed, complex, binary", name)
	}
}

func sortedCopy(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
