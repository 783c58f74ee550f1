// Package userfunc lets a user register functions written as plain
// expression text, e.g. "Add2(x) = x + 2", instead of Go code.
package userfunc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Neo-Ciber94/prexel-go/pkg/evaluator"
)

// Stringer is the constraint a numeric kind must satisfy to be usable
// with Function: its String() form is substituted textually into
// the function body before re-evaluation.
type Stringer interface {
	String() string
}

// ParseErrorKind classifies why a "Name(params) = body" definition was
// rejected.
type ParseErrorKind int

const (
	// Empty means the definition string was empty.
	Empty ParseErrorKind = iota
	// InvalidName means a parameter name was empty or contained
	// whitespace or a non-alphanumeric character. The function name is
	// not checked.
	InvalidName
	// DuplicatedParam means the same parameter name appeared twice.
	DuplicatedParam
	// InvalidFormat means the definition was not "name(params) = body".
	InvalidFormat
	// InvalidBody means the body failed to tokenize, or its count of
	// unresolved (Unknown) tokens did not match the parameter count.
	InvalidBody
)

func (k ParseErrorKind) String() string {
	switch k {
	case Empty:
		return "empty expression"
	case InvalidName:
		return "invalid name"
	case DuplicatedParam:
		return "duplicated parameter"
	case InvalidFormat:
		return "invalid format, expected: Name(params) = body"
	case InvalidBody:
		return "invalid function body"
	default:
		return "invalid function definition"
	}
}

// ParseError reports why parsing a custom function definition failed.
type ParseError struct {
	Kind ParseErrorKind
	Name string
}

func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Name)
	}
	return e.Kind.String()
}

// Function is a user-defined callable parsed from "Name(p1, p2) = body".
// Calling it substitutes each argument's String() form for its
// parameter name in body and re-evaluates the result via evaluator.
type Function[N Stringer] struct {
	funcName  string
	params    []string
	body      string
	evaluator *evaluator.Evaluator[N]
}

// Parse parses a "Name(p1, p2) = body" definition against the given
// Evaluator, validating parameter names, duplicates, and that the body
// resolves to exactly one unknown token per parameter.
func Parse[N Stringer](eval *evaluator.Evaluator[N], definition string) (*Function[N], error) {
	if strings.TrimSpace(definition) == "" {
		return nil, &ParseError{Kind: Empty}
	}

	parts := strings.SplitN(definition, "=", 2)
	if len(parts) != 2 {
		return nil, &ParseError{Kind: InvalidFormat}
	}
	head := strings.TrimSpace(parts[0])
	body := strings.TrimSpace(parts[1])

	openParen := strings.IndexByte(head, '(')
	closeParen := strings.IndexByte(head, ')')
	if openParen < 0 || closeParen < 0 || closeParen < openParen {
		return nil, &ParseError{Kind: InvalidFormat}
	}

	funcName := head[:openParen]
	paramsStr := head[openParen+1 : closeParen]

	var params []string
	if strings.TrimSpace(paramsStr) != "" {
		seen := make(map[string]bool)
		for _, p := range strings.Split(paramsStr, ",") {
			name := strings.TrimSpace(p)
			if err := checkName(name); err != nil {
				return nil, err
			}
			if seen[name] {
				return nil, &ParseError{Kind: DuplicatedParam, Name: name}
			}
			seen[name] = true
			params = append(params, name)
		}
	}

	if err := checkBody(eval, params, body); err != nil {
		return nil, err
	}

	return &Function[N]{funcName: funcName, params: params, body: body, evaluator: eval}, nil
}

func checkName(name string) error {
	if name == "" {
		return &ParseError{Kind: InvalidName, Name: name}
	}
	for _, r := range name {
		if unicode.IsSpace(r) || !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &ParseError{Kind: InvalidName, Name: name}
		}
	}
	return nil
}

func checkBody[N Stringer](eval *evaluator.Evaluator[N], params []string, body string) error {
	if body == "" {
		return &ParseError{Kind: Empty}
	}
	for _, p := range params {
		if !strings.Contains(body, p) {
			return &ParseError{Kind: InvalidBody}
		}
	}

	tokens, err := eval.Tokenize(body)
	if err != nil {
		return &ParseError{Kind: InvalidBody}
	}

	unknownCount := 0
	for _, t := range tokens {
		if t.IsUnknown() {
			unknownCount++
		}
	}
	if unknownCount != len(params) {
		return &ParseError{Kind: InvalidBody}
	}

	return nil
}

// Name returns the function's name.
func (f *Function[N]) Name() string { return f.funcName }

// Params returns the function's parameter names, in declared order.
func (f *Function[N]) Params() []string { return f.params }

// Body returns the function's unevaluated body expression.
func (f *Function[N]) Body() string { return f.body }

// Call substitutes args into the body (positionally, by parameter name)
// and evaluates the result via the owning Evaluator.
func (f *Function[N]) Call(args []N) (N, error) {
	var zero N
	if len(args) != len(f.params) {
		return zero, fmt.Errorf("%s: expected %d arguments, got %d", f.funcName, len(f.params), len(args))
	}

	expr := f.body
	for i, param := range f.params {
		expr = strings.ReplaceAll(expr, param, args[i].String())
	}

	return f.evaluator.Eval(expr)
}
