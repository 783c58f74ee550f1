// Package binarynum registers a bit-level binary-integer numeric kind,
// backed by math/big.Int, with bitwise and comparison operators and a
// "b"-prefixed literal (b1101) via a custom splitter rule.
package binarynum

import (
	"math/big"
	"strings"

	"github.com/Neo-Ciber94/prexel-go/internal/splitter"
	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
	"github.com/Neo-Ciber94/prexel-go/pkg/exprcontext"
	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

// Splitter returns a Splitter recognizing "b"-prefixed binary literals,
// e.g. b1000, and the two-character operators == != >= <= >> << as single
// lexemes, alongside the default identifier/number/operator grammar.
func Splitter() splitter.Splitter {
	return splitter.NewWithRule(func(first rune, rest *splitter.Cursor) (string, bool) {
		if next, ok := rest.Peek(); ok {
			switch pair := string(first) + string(next); pair {
			case "==", "!=", ">=", "<=", ">>", "<<":
				rest.Next()
				return pair, true
			}
		}

		if first != 'b' {
			return "", false
		}
		next, ok := rest.Peek()
		if !ok || (next != '0' && next != '1') {
			return "", false
		}

		var sb strings.Builder
		sb.WriteRune(first)
		for {
			r, ok := rest.Peek()
			if !ok || r < '0' || r > '9' {
				break
			}
			sb.WriteRune(r)
			rest.Next()
		}
		return sb.String(), true
	})
}

// ParseNumber parses a lexeme as either a "b"-prefixed binary literal or
// a plain base-10 integer literal.
func ParseNumber(lexeme string) (*big.Int, bool) {
	if rest, ok := strings.CutPrefix(lexeme, "b"); ok {
		return new(big.Int).SetString(rest, 2)
	}
	return new(big.Int).SetString(lexeme, 10)
}

func boolToBig(b bool) *big.Int {
	if b {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

// NewContext builds a fresh Context over *big.Int, registering the
// bitwise and comparison callables binarynum exposes.
func NewContext() *exprcontext.DefaultContext[*big.Int] {
	return NewContextWithConfig(exprcontext.NewConfig())
}

// NewContextWithConfig builds a fresh Context using the given Config.
func NewContextWithConfig(config exprcontext.Config) *exprcontext.DefaultContext[*big.Int] {
	ctx := exprcontext.NewContextWithConfig[*big.Int](config)

	ctx.AddUnaryOperator(function.NamedUnary[*big.Int]{
		FuncName: "~",
		Note:     function.Prefix,
		Fn:       func(v *big.Int) (*big.Int, error) { return new(big.Int).Not(v), nil },
	})

	addBinary := func(name string, prec function.Precedence, fn func(l, r *big.Int) (*big.Int, error)) {
		ctx.AddBinaryOperator(function.NamedBinary[*big.Int]{FuncName: name, Prec: prec, Assoc: function.Left, Fn: fn})
	}

	addBinary("&", function.Precedence(11), func(l, r *big.Int) (*big.Int, error) { return new(big.Int).And(l, r), nil })
	addBinary("^", function.Precedence(12), func(l, r *big.Int) (*big.Int, error) { return new(big.Int).Xor(l, r), nil })
	addBinary("|", function.Precedence(13), func(l, r *big.Int) (*big.Int, error) { return new(big.Int).Or(l, r), nil })
	addBinary("==", function.Precedence(10), func(l, r *big.Int) (*big.Int, error) { return boolToBig(l.Cmp(r) == 0), nil })
	addBinary("!=", function.Precedence(10), func(l, r *big.Int) (*big.Int, error) { return boolToBig(l.Cmp(r) != 0), nil })
	addBinary(">", function.Precedence(9), func(l, r *big.Int) (*big.Int, error) { return boolToBig(l.Cmp(r) > 0), nil })
	addBinary("<", function.Precedence(9), func(l, r *big.Int) (*big.Int, error) { return boolToBig(l.Cmp(r) < 0), nil })
	addBinary(">=", function.Precedence(9), func(l, r *big.Int) (*big.Int, error) { return boolToBig(l.Cmp(r) >= 0), nil })
	addBinary("<=", function.Precedence(9), func(l, r *big.Int) (*big.Int, error) { return boolToBig(l.Cmp(r) <= 0), nil })
	addBinary(">>", function.Precedence(7), func(l, r *big.Int) (*big.Int, error) {
		return new(big.Int).Rsh(l, uint(r.Uint64())), nil
	})
	addBinary("<<", function.Precedence(7), func(l, r *big.Int) (*big.Int, error) {
		return new(big.Int).Lsh(l, uint(r.Uint64())), nil
	})

	return ctx
}

// NewEvaluator builds an Evaluator[*big.Int] wired to the binary literal
// Splitter and a fresh binarynum Context.
func NewEvaluator() *evaluator.Evaluator[*big.Int] {
	return evaluator.WithSplitter[*big.Int](NewContext(), Splitter(), ParseNumber)
}
