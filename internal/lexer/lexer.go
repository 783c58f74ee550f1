// Package lexer classifies the lexemes produced by the splitter into
// Token values, resolving whether an operator symbol acts as unary or
// binary from its surrounding lexemes and the Context.
package lexer

import (
	"github.com/Neo-Ciber94/prexel-go/internal/splitter"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
	"github.com/Neo-Ciber94/prexel-go/pkg/token"
)

const commaLexeme = ","

// ParseNumber attempts to parse a lexeme into N, the numeric kind's own
// literal grammar (e.g. decimal.NewFromString, strconv.ParseFloat).
type ParseNumber[N any] func(lexeme string) (N, bool)

// Lexer turns raw lexemes into Token[N] values by consulting a Context.
type Lexer[N any] struct {
	context     exprcontext.Context[N]
	splitter    splitter.Splitter
	parseNumber ParseNumber[N]
}

// New constructs a Lexer using the default Splitter.
func New[N any](context exprcontext.Context[N], parseNumber ParseNumber[N]) *Lexer[N] {
	return WithSplitter(context, splitter.New(), parseNumber)
}

// WithSplitter constructs a Lexer using a custom Splitter, e.g. one
// extended with a Rule for a numeric kind's own literal prefix.
func WithSplitter[N any](context exprcontext.Context[N], s splitter.Splitter, parseNumber ParseNumber[N]) *Lexer[N] {
	return &Lexer[N]{context: context, splitter: s, parseNumber: parseNumber}
}

// Tokenize splits expression and classifies each lexeme into a Token.
func (l *Lexer[N]) Tokenize(expression string) ([]token.Token[N], error) {
	if isBlank(expression) {
		return nil, exprerr.New(exprerr.Empty, "expression is empty")
	}

	rawTokens := l.splitter.SplitIntoTokens(expression)
	tokens := make([]token.Token[N], 0, len(rawTokens))
	context := l.context

	for pos := 0; pos < len(rawTokens); pos++ {
		lexeme := rawTokens[pos]

		if n, ok := l.parseNumber(lexeme); ok {
			if context.Config().ComplexNumber && pos+1 < len(rawTokens) && rawTokens[pos+1] == "i" {
				combined := lexeme + "i"
				im, ok := l.parseNumber(combined)
				if !ok {
					return nil, exprerr.New(exprerr.InvalidInput, "failed to parse `%s` as a number", combined)
				}
				pos++
				tokens = append(tokens, token.NewNumber(im))
			} else {
				tokens = append(tokens, token.NewNumber(n))
			}
			continue
		}

		switch {
		case context.IsVariable(lexeme):
			tokens = append(tokens, token.NewVariable[N](lexeme))
		case context.IsConstant(lexeme):
			tokens = append(tokens, token.NewConstant[N](lexeme))
		case context.IsFunction(lexeme):
			tokens = append(tokens, token.NewFunction[N](lexeme))
		case context.IsBinaryOperator(lexeme) || context.IsUnaryOperator(lexeme):
			var prev, next *string
			if pos > 0 {
				prev = &rawTokens[pos-1]
			}
			if pos < len(rawTokens)-1 {
				next = &rawTokens[pos+1]
			}

			if isUnary(l, prev, lexeme, next) {
				tokens = append(tokens, token.NewUnaryOperator[N](lexeme))
			} else {
				if prev == nil || next == nil {
					return nil, exprerr.New(exprerr.InvalidExpression,
						"binary operations need 2 operands: %s %s %s", strPtr(prev), lexeme, strPtr(next))
				}
				tokens = append(tokens, token.NewBinaryOperator[N](lexeme))
			}
		case lexeme == commaLexeme:
			tokens = append(tokens, token.NewComma[N]())
		default:
			runes := []rune(lexeme)
			if len(runes) == 1 {
				c := runes[0]
				if symbol, ok := context.Config().GroupSymbol(c); ok {
					if c == symbol.Open {
						tokens = append(tokens, token.NewGroupingOpen[N](c))
					} else {
						tokens = append(tokens, token.NewGroupingClose[N](c))
					}
					continue
				}
			}
			tokens = append(tokens, token.NewUnknown[N](lexeme))
		}
	}

	return tokens, nil
}

func strPtr(s *string) string {
	if s == nil {
		return "<none>"
	}
	return *s
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

// isUnary decides whether the operator lexeme cur should be treated as
// unary given its neighbors: postfix operators look left for an operand,
// prefix operators look right and rule out cases where the left
// neighbor is itself an operand or a closing grouping.
func isUnary[N any](l *Lexer[N], prev *string, cur string, next *string) bool {
	op, ok := l.context.GetUnaryOperator(cur)
	if !ok {
		return false
	}

	config := l.context.Config()

	if op.Notation() == function.Postfix {
		if prev == nil {
			return false
		}
		if ch, ok := singleRune(*prev); ok && config.IsGroupClose(ch) {
			return true // )!
		}
		if _, ok := l.parseNumber(*prev); ok {
			return true // 10!
		}
		return l.context.IsConstant(*prev) || l.context.IsVariable(*prev) // PI!, x!
	}

	// Prefix: -10, +(25), etc.
	if next == nil {
		return false
	}

	if prev == nil {
		return true // -10, +(25) at the start of the expression
	}

	if ch, ok := singleRune(*prev); ok && config.IsGroupClose(ch) {
		return false // )+, )-
	}

	if _, ok := l.parseNumber(*prev); ok {
		return false // 10+
	}
	if l.context.IsVariable(*prev) || l.context.IsConstant(*prev) {
		return false // x+, PI-
	}

	if ch, ok := singleRune(*prev); ok {
		if l.context.IsUnaryOperator(string(ch)) && !l.context.IsBinaryOperator(string(ch)) {
			return false // 10! - 2
		}
		return isASCIIPunctuation(ch) // +-, (-, !+
	}

	return true
}

func isASCIIPunctuation(r rune) bool {
	return (r >= '!' && r <= '/') ||
		(r >= ':' && r <= '@') ||
		(r >= '[' && r <= '`') ||
		(r >= '{' && r <= '~')
}
