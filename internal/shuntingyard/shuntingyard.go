// Package shuntingyard converts an infix token stream into Reverse
// Polish Notation using Dijkstra's shunting-yard algorithm, resolving
// operator precedence/associativity and function call arity against a
// Context.
package shuntingyard

import (
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
	"github.com/Neo-Ciber94/prexel-go/pkg/token"
)

// InfixToRPN converts tokens from infix to Reverse Polish Notation.
//
// See: https://en.wikipedia.org/wiki/Shunting-yard_algorithm
func InfixToRPN[N any](tokens []token.Token[N], context exprcontext.Context[N]) ([]token.Token[N], error) {
	var output []token.Token[N]
	var operators []token.Token[N]
	var argCount []int
	var argStart []int
	var groupingPositions []int

	for pos, tok := range tokens {
		switch tok.Kind {
		case token.Number, token.Variable, token.Constant:
			pushNumber(context, &output, &operators, tok)

		case token.BinaryOperator:
			if err := pushBinaryFunction(context, &output, &operators, tok); err != nil {
				return nil, err
			}

		case token.UnaryOperator:
			if err := pushUnaryFunction(context, &output, &operators, tok); err != nil {
				return nil, err
			}

		case token.Function:
			if !context.Config().CustomFunctionCall {
				if pos+1 >= len(tokens) || !tokens[pos+1].ContainsSymbol('(') {
					return nil, exprerr.New(exprerr.InvalidInput,
						"function arguments of `%s` are not within parentheses", tok.Name)
				}
			}
			argCount = append(argCount, 0)
			argStart = append(argStart, len(output))
			operators = append(operators, tok)

		case token.GroupingOpen:
			operators = append(operators, tok)
			if len(argCount) > 0 {
				groupingPositions = append(groupingPositions, pos)
			}

		case token.GroupingClose:
			if err := pushGroupingClose(context, tok.Symbol, &output, &operators, &argCount, &argStart); err != nil {
				return nil, err
			}

			// Checking for empty grouping symbols: `Random(())`, `()+2`.
			if pos > 0 && tokens[pos-1].Kind == token.GroupingOpen {
				if closeFor, ok := context.Config().GroupCloseFor(tokens[pos-1].Symbol); ok &&
					closeFor == tok.Symbol && (pos == 1 || !tokens[pos-2].IsFunction()) {
					return nil, exprerr.New(exprerr.InvalidExpression,
						"empty grouping symbols: %c%c", tokens[pos-1].Symbol, tok.Symbol)
				}
			}

			if len(argCount) > 0 && len(groupingPositions) > 0 {
				groupingPositions = groupingPositions[:len(groupingPositions)-1]
			}

		case token.Comma:
			if err := checkCommaPosition(tokens, groupingPositions, pos); err != nil {
				return nil, err
			}
			if err := pushComma(&output, &operators, &argCount); err != nil {
				return nil, err
			}

		default:
			return nil, exprerr.New(exprerr.InvalidInput, "invalid token: %v", tok)
		}

		if context.Config().ImplicitMul {
			pushImplicitMul(tokens, pos, tok, &operators)
		}
	}

	for len(operators) > 0 {
		t := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if t.IsGroupingOpen() || t.IsGroupingClose() {
			return nil, exprerr.New(exprerr.InvalidExpression, "mismatched grouping symbols")
		}
		output = append(output, t)
	}

	return output, nil
}

// pushImplicitMul inserts a synthetic '*' operator between adjacent
// tokens that are only valid together under implicit multiplication,
// e.g. "2x", "2(3+1)", "(2)(3)".
func pushImplicitMul[N any](tokens []token.Token[N], pos int, tok token.Token[N], operators *[]token.Token[N]) {
	if pos+1 >= len(tokens) {
		return
	}
	next := tokens[pos+1]

	switch {
	case tok.IsNumber():
		switch next.Kind {
		case token.Function, token.Constant, token.Variable, token.GroupingOpen:
			*operators = append(*operators, token.NewBinaryOperator[N]("*"))
		}
	case tok.IsGroupingClose():
		switch next.Kind {
		case token.Number, token.Variable, token.Constant, token.Function, token.GroupingOpen:
			*operators = append(*operators, token.NewBinaryOperator[N]("*"))
		}
	}
}

func checkCommaPosition[N any](tokens []token.Token[N], groupingPositions []int, pos int) error {
	if pos == 0 {
		return exprerr.New(exprerr.InvalidExpression, "misplaced comma")
	}

	if tokens[pos-1].IsGroupingOpen() {
		return exprerr.New(exprerr.InvalidExpression, "misplaced comma: `(,`")
	}

	if pos+1 < len(tokens) && tokens[pos+1].IsGroupingClose() {
		return exprerr.New(exprerr.InvalidExpression, "misplaced comma: `,)`")
	}

	// Reject commas whose enclosing grouping is not a function call, e.g.
	// `Max((1,2,3))`.
	if len(groupingPositions) > 0 {
		idx := groupingPositions[len(groupingPositions)-1] - 1
		if idx < 0 || !tokens[idx].IsFunction() {
			return exprerr.New(exprerr.InvalidExpression, "misplaced comma")
		}
	}

	return nil
}

func pushNumber[N any](context exprcontext.Context[N], output, operators *[]token.Token[N], tok token.Token[N]) {
	*output = append(*output, tok)

	if n := len(*operators); n > 0 {
		top := (*operators)[n-1]
		if top.IsUnaryOperator() {
			if _, ok := context.GetUnaryOperator(top.Name); ok {
				*output = append(*output, top)
				*operators = (*operators)[:n-1]
			}
		}
	}
}

func pushUnaryFunction[N any](context exprcontext.Context[N], output, operators *[]token.Token[N], tok token.Token[N]) error {
	unary, ok := context.GetUnaryOperator(tok.Name)
	if !ok {
		return exprerr.New(exprerr.InvalidInput, "unary operator `%s` not found", tok.Name)
	}

	switch unary.Notation() {
	case function.Prefix:
		*operators = append(*operators, tok)
	case function.Postfix:
		if len(*output) == 0 {
			return exprerr.New(exprerr.InvalidExpression, "misplaced unary operator")
		}
		*output = append(*output, tok)
	}

	return nil
}

func pushBinaryFunction[N any](context exprcontext.Context[N], output, operators *[]token.Token[N], tok token.Token[N]) error {
	operator, ok := context.GetBinaryOperator(tok.Name)
	if !ok {
		return exprerr.New(exprerr.InvalidInput, "binary function `%s` not found", tok.Name)
	}

	for len(*operators) > 0 {
		top := (*operators)[len(*operators)-1]

		if top.IsGroupingOpen() {
			break
		}

		if top.IsFunction() {
			*output = append(*output, top)
			*operators = (*operators)[:len(*operators)-1]
			continue
		}

		if !top.IsBinaryOperator() {
			break
		}

		topOperator, ok := context.GetBinaryOperator(top.Name)
		if !ok {
			break
		}

		if topOperator.Precedence() > operator.Precedence() ||
			(topOperator.Precedence() == operator.Precedence() && topOperator.Associativity() == function.Left) {
			*output = append(*output, top)
			*operators = (*operators)[:len(*operators)-1]
		} else {
			break
		}
	}

	*operators = append(*operators, tok)
	return nil
}

func pushGroupingClose[N any](context exprcontext.Context[N], groupClose rune, output, operators *[]token.Token[N], argCount, argStart *[]int) error {
	isGroupOpen := false

	for len(*operators) > 0 {
		t := (*operators)[len(*operators)-1]
		*operators = (*operators)[:len(*operators)-1]

		if t.IsGroupingOpen() {
			if symbol, ok := context.Config().GroupSymbol(t.Symbol); ok && symbol.Close == groupClose {
				isGroupOpen = true

				if len(*argCount) > 0 && len(*operators) > 0 && (*operators)[len(*operators)-1].IsFunction() {
					start := (*argStart)[len(*argStart)-1]
					*argStart = (*argStart)[:len(*argStart)-1]

					// A comma only separates arguments that exist; an empty
					// call like `Sum()` never pushes anything to output
					// between the opening and closing symbol, so counting
					// commas alone would report 1 argument instead of 0.
					count := 0
					if len(*output) > start {
						count = (*argCount)[len(*argCount)-1] + 1
					}
					*argCount = (*argCount)[:len(*argCount)-1]
					*output = append(*output, token.NewArgCount[N](count))

					fn := (*operators)[len(*operators)-1]
					*operators = (*operators)[:len(*operators)-1]
					*output = append(*output, fn)
				}
			}
			break
		}

		*output = append(*output, t)
	}

	if !isGroupOpen {
		return exprerr.New(exprerr.InvalidExpression, "misplaced grouping symbol")
	}
	return nil
}

func pushComma[N any](output, operators *[]token.Token[N], argCount *[]int) error {
	if len(*argCount) == 0 {
		return exprerr.New(exprerr.InvalidExpression, "comma found but not inside a function call")
	}
	(*argCount)[len(*argCount)-1]++

	isGroupOpen := false
	for len(*operators) > 0 {
		top := (*operators)[len(*operators)-1]
		if top.IsGroupingOpen() {
			isGroupOpen = true
			break
		}
		*output = append(*output, top)
		*operators = (*operators)[:len(*operators)-1]
	}

	if !isGroupOpen {
		return exprerr.New(exprerr.InvalidExpression, "misplaced comma")
	}
	return nil
}
