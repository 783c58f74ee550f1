// Package evaluator is the public facade over the expression pipeline:
// it tokenizes an infix expression, converts it to Reverse Polish
// Notation, and evaluates the RPN stream against a Context.
package evaluator

import (
	"github.com/Neo-Ciber94/prexel-go/internal/lexer"
	"github.com/Neo-Ciber94/prexel-go/internal/shuntingyard"
	"github.com/Neo-Ciber94/prexel-go/internal/splitter"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/token"
)

// Evaluator ties together a Context and the Lexer built from it.
type Evaluator[N any] struct {
	context exprcontext.Context[N]
	lexer   *lexer.Lexer[N]
}

// New constructs an Evaluator using the default Splitter.
func New[N any](context exprcontext.Context[N], parseNumber lexer.ParseNumber[N]) *Evaluator[N] {
	return &Evaluator[N]{context: context, lexer: lexer.New(context, parseNumber)}
}

// WithSplitter constructs an Evaluator using a custom Splitter, e.g. one
// extended with a Rule for a numeric kind's own literal syntax.
func WithSplitter[N any](context exprcontext.Context[N], s splitter.Splitter, parseNumber lexer.ParseNumber[N]) *Evaluator[N] {
	return &Evaluator[N]{context: context, lexer: lexer.WithSplitter(context, s, parseNumber)}
}

// Context returns the Context this Evaluator reads from.
func (e *Evaluator[N]) Context() exprcontext.Context[N] { return e.context }

// Tokenize splits and classifies expression without evaluating it.
func (e *Evaluator[N]) Tokenize(expression string) ([]token.Token[N], error) {
	return e.lexer.Tokenize(expression)
}

// Eval tokenizes and evaluates expression in one step.
func (e *Evaluator[N]) Eval(expression string) (N, error) {
	var zero N

	tokens, err := e.lexer.Tokenize(expression)
	if err != nil {
		return zero, err
	}
	return e.EvalTokens(tokens)
}

// EvalTokens converts tokens to RPN and evaluates the result.
func (e *Evaluator[N]) EvalTokens(tokens []token.Token[N]) (N, error) {
	return RPNEval(tokens, e.context)
}

// InfixToRPN converts tokens from infix notation to Reverse Polish
// Notation. It is exposed standalone so callers can inspect the RPN
// stream without evaluating it.
func InfixToRPN[N any](tokens []token.Token[N], context exprcontext.Context[N]) ([]token.Token[N], error) {
	return shuntingyard.InfixToRPN(tokens, context)
}

// RPNEval converts tokens to RPN and runs the stack machine.
func RPNEval[N any](tokens []token.Token[N], context exprcontext.Context[N]) (N, error) {
	var zero N

	rpn, err := shuntingyard.InfixToRPN(tokens, context)
	if err != nil {
		return zero, err
	}

	var values []N
	var argCount *int

	for _, tok := range rpn {
		switch tok.Kind {
		case token.Number:
			values = append(values, tok.Value)

		case token.Variable:
			v, ok := context.GetVariable(tok.Name)
			if !ok {
				return zero, exprerr.New(exprerr.InvalidInput, "variable `%s` not found", tok.Name)
			}
			values = append(values, v)

		case token.Constant:
			v, ok := context.GetConstant(tok.Name)
			if !ok {
				return zero, exprerr.New(exprerr.InvalidInput, "constant `%s` not found", tok.Name)
			}
			values = append(values, v)

		case token.ArgCount:
			n := tok.Count
			argCount = &n

		case token.UnaryOperator:
			op, ok := context.GetUnaryOperator(tok.Name)
			if !ok {
				return zero, exprerr.New(exprerr.InvalidInput, "unary operator `%s` not found", tok.Name)
			}
			if len(values) < 1 {
				return zero, exprerr.New(exprerr.InvalidExpression, "invalid expression")
			}

			v := values[len(values)-1]
			values = values[:len(values)-1]

			result, err := op.Call(v)
			if err != nil {
				return zero, err
			}
			values = append(values, result)

		case token.BinaryOperator:
			op, ok := context.GetBinaryOperator(tok.Name)
			if !ok {
				return zero, exprerr.New(exprerr.InvalidInput, "binary operator `%s` not found", tok.Name)
			}
			if len(values) < 2 {
				return zero, exprerr.New(exprerr.InvalidExpression, "invalid expression")
			}

			x := values[len(values)-1]
			y := values[len(values)-2]
			values = values[:len(values)-2]

			result, err := op.Call(y, x)
			if err != nil {
				return zero, err
			}
			values = append(values, result)

		case token.Function:
			fn, ok := context.GetFunction(tok.Name)
			if !ok {
				return zero, exprerr.New(exprerr.InvalidInput, "function `%s` not found", tok.Name)
			}
			if argCount == nil {
				return zero, exprerr.New(exprerr.InvalidInput,
					"cannot evaluate function `%s`, unknown number of arguments", tok.Name)
			}

			n := *argCount
			if len(values) < n {
				return zero, exprerr.New(exprerr.InvalidArgumentCount,
					"expected %d arguments but got %d", n, len(values))
			}

			args := make([]N, n)
			copy(args, values[len(values)-n:])
			values = values[:len(values)-n]

			result, err := fn.Call(args)
			if err != nil {
				return zero, err
			}
			values = append(values, result)
			argCount = nil

		default:
			return zero, exprerr.New(exprerr.InvalidInput, "unknown token: %v", tok)
		}
	}

	if len(values) == 1 {
		return values[0], nil
	}
	return zero, exprerr.FromKind(exprerr.InvalidExpression)
}
