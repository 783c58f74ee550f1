// Package exprcontext provides the symbol table (variables, constants,
// functions and operators) and Config an expression is evaluated against.
package exprcontext

import (
	"fmt"
	"strings"

	"github.com/Neo-Ciber94/prexel-go/pkg/function"
)

// Context supplies the variables, constants and callables used to
// evaluate an expression. Constants, functions and operators are looked
// up case-insensitively; variables are looked up case-sensitively.
type Context[N any] interface {
	// Config returns the configuration this context was built with.
	Config() Config

	// AddFunction registers f under its own name. Panics if the name is
	// already registered or invalid.
	AddFunction(f function.Function[N])
	// AddFunctionAs registers f under an alias distinct from its own name.
	AddFunctionAs(f function.Function[N], name string)
	// AddUnaryOperator registers op under its own name.
	AddUnaryOperator(op function.UnaryOperator[N])
	// AddUnaryOperatorAs registers op under an alias.
	AddUnaryOperatorAs(op function.UnaryOperator[N], name string)
	// AddBinaryOperator registers op under its own name.
	AddBinaryOperator(op function.BinaryOperator[N])
	// AddBinaryOperatorAs registers op under an alias.
	AddBinaryOperatorAs(op function.BinaryOperator[N], name string)
	// AddConstant registers a constant value. Panics if a variable of the
	// same name (case-insensitive) already exists.
	AddConstant(name string, value N)

	// SetVariable sets or overwrites a variable's value, returning the
	// previous value if any. Panics if a constant of the same name exists.
	SetVariable(name string, value N) (N, bool)
	// GetVariable looks up a variable by exact name.
	GetVariable(name string) (N, bool)
	// GetConstant looks up a constant, case-insensitively.
	GetConstant(name string) (N, bool)
	// GetFunction looks up a function, case-insensitively.
	GetFunction(name string) (function.Function[N], bool)
	// GetUnaryOperator looks up a unary operator, case-insensitively.
	GetUnaryOperator(name string) (function.UnaryOperator[N], bool)
	// GetBinaryOperator looks up a binary operator, case-insensitively.
	GetBinaryOperator(name string) (function.BinaryOperator[N], bool)

	// IsVariable reports whether a variable with the exact name exists.
	IsVariable(name string) bool
	// IsConstant reports whether a constant with the name exists (case-insensitive).
	IsConstant(name string) bool
	// IsFunction reports whether a function with the name exists (case-insensitive).
	IsFunction(name string) bool
	// IsUnaryOperator reports whether a unary operator with the name exists (case-insensitive).
	IsUnaryOperator(name string) bool
	// IsBinaryOperator reports whether a binary operator with the name exists (case-insensitive).
	IsBinaryOperator(name string) bool
}

// DefaultContext is the standard in-memory Context implementation: plain
// maps for variables, constants and the three callable kinds.
type DefaultContext[N any] struct {
	variables map[string]N
	constants map[string]N
	functions map[string]function.Function[N]
	unaryOps  map[string]function.UnaryOperator[N]
	binaryOps map[string]function.BinaryOperator[N]
	config    Config
}

// NewContext constructs an empty DefaultContext with a default Config
// (grouping symbols '(' ')' only, every switch off).
func NewContext[N any]() *DefaultContext[N] {
	return NewContextWithConfig[N](NewConfig())
}

// NewContextWithConfig constructs an empty DefaultContext with the given Config.
func NewContextWithConfig[N any](config Config) *DefaultContext[N] {
	return &DefaultContext[N]{
		variables: make(map[string]N),
		constants: make(map[string]N),
		functions: make(map[string]function.Function[N]),
		unaryOps:  make(map[string]function.UnaryOperator[N]),
		binaryOps: make(map[string]function.BinaryOperator[N]),
		config:    config,
	}
}

func foldCase(name string) string { return strings.ToUpper(name) }

// Config returns the configuration this context was built with.
func (c *DefaultContext[N]) Config() Config { return c.config }

// Variables returns the live variable map. Callers must not mutate it
// directly; use SetVariable.
func (c *DefaultContext[N]) Variables() map[string]N { return c.variables }

// FunctionNames returns the registered function names in their upper-cased
// lookup form, for diagnostic listing (e.g. a CLI `context` command).
func (c *DefaultContext[N]) FunctionNames() []string {
	names := make([]string, 0, len(c.functions))
	for name := range c.functions {
		names = append(names, name)
	}
	return names
}

// ConstantNames returns the registered constant names in their upper-cased
// lookup form, for diagnostic listing.
func (c *DefaultContext[N]) ConstantNames() []string {
	names := make([]string, 0, len(c.constants))
	for name := range c.constants {
		names = append(names, name)
	}
	return names
}

// AddFunction registers f under its own name.
func (c *DefaultContext[N]) AddFunction(f function.Function[N]) {
	c.AddFunctionAs(f, f.Name())
}

// AddFunctionAs registers f under an alias distinct from its own name.
func (c *DefaultContext[N]) AddFunctionAs(f function.Function[N], name string) {
	if err := checkTokenName(kindFunction, name); err != nil {
		panic(err)
	}

	key := foldCase(name)
	if _, exists := c.functions[key]; exists {
		panic(fmt.Sprintf("a function named %q already exists", name))
	}
	c.functions[key] = f
}

// AddUnaryOperator registers op under its own name.
func (c *DefaultContext[N]) AddUnaryOperator(op function.UnaryOperator[N]) {
	c.AddUnaryOperatorAs(op, op.Name())
}

// AddUnaryOperatorAs registers op under an alias.
func (c *DefaultContext[N]) AddUnaryOperatorAs(op function.UnaryOperator[N], name string) {
	if err := checkTokenName(kindOperator, name); err != nil {
		panic(err)
	}

	key := foldCase(name)
	if _, exists := c.unaryOps[key]; exists {
		panic(fmt.Sprintf("a unary operator named %q already exists", name))
	}
	c.unaryOps[key] = op
}

// AddBinaryOperator registers op under its own name.
func (c *DefaultContext[N]) AddBinaryOperator(op function.BinaryOperator[N]) {
	c.AddBinaryOperatorAs(op, op.Name())
}

// AddBinaryOperatorAs registers op under an alias.
func (c *DefaultContext[N]) AddBinaryOperatorAs(op function.BinaryOperator[N], name string) {
	kind := kindOperator
	if len([]rune(name)) > 1 {
		kind = kindFunction
	}
	if err := checkTokenName(kind, name); err != nil {
		panic(err)
	}

	key := foldCase(name)
	if _, exists := c.binaryOps[key]; exists {
		panic(fmt.Sprintf("a binary operator named %q already exists", name))
	}
	c.binaryOps[key] = op
}

// AddConstant registers a constant value.
func (c *DefaultContext[N]) AddConstant(name string, value N) {
	if err := checkTokenName(kindConstant, name); err != nil {
		panic(err)
	}

	for v := range c.variables {
		if strings.EqualFold(v, name) {
			panic(fmt.Sprintf("invalid constant name, a variable named %q exists", name))
		}
	}

	key := foldCase(name)
	if _, exists := c.constants[key]; exists {
		panic(fmt.Sprintf("a constant named %q already exists", name))
	}
	c.constants[key] = value
}

// SetVariable sets or overwrites a variable's value.
func (c *DefaultContext[N]) SetVariable(name string, value N) (N, bool) {
	if err := checkTokenName(kindVariable, name); err != nil {
		panic(err)
	}

	if _, exists := c.constants[foldCase(name)]; exists {
		panic(fmt.Sprintf("invalid variable name, a constant named %q exists", name))
	}

	prev, existed := c.variables[name]
	c.variables[name] = value
	return prev, existed
}

// GetVariable looks up a variable by exact name.
func (c *DefaultContext[N]) GetVariable(name string) (N, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// GetConstant looks up a constant, case-insensitively.
func (c *DefaultContext[N]) GetConstant(name string) (N, bool) {
	v, ok := c.constants[foldCase(name)]
	return v, ok
}

// GetFunction looks up a function, case-insensitively.
func (c *DefaultContext[N]) GetFunction(name string) (function.Function[N], bool) {
	f, ok := c.functions[foldCase(name)]
	return f, ok
}

// GetUnaryOperator looks up a unary operator, case-insensitively.
func (c *DefaultContext[N]) GetUnaryOperator(name string) (function.UnaryOperator[N], bool) {
	op, ok := c.unaryOps[foldCase(name)]
	return op, ok
}

// GetBinaryOperator looks up a binary operator, case-insensitively.
func (c *DefaultContext[N]) GetBinaryOperator(name string) (function.BinaryOperator[N], bool) {
	op, ok := c.binaryOps[foldCase(name)]
	return op, ok
}

// IsVariable reports whether a variable with the exact name exists.
func (c *DefaultContext[N]) IsVariable(name string) bool {
	_, ok := c.GetVariable(name)
	return ok
}

// IsConstant reports whether a constant with the name exists (case-insensitive).
func (c *DefaultContext[N]) IsConstant(name string) bool {
	_, ok := c.GetConstant(name)
	return ok
}

// IsFunction reports whether a function with the name exists (case-insensitive).
func (c *DefaultContext[N]) IsFunction(name string) bool {
	_, ok := c.GetFunction(name)
	return ok
}

// IsUnaryOperator reports whether a unary operator with the name exists (case-insensitive).
func (c *DefaultContext[N]) IsUnaryOperator(name string) bool {
	_, ok := c.GetUnaryOperator(name)
	return ok
}

// IsBinaryOperator reports whether a binary operator with the name exists (case-insensitive).
func (c *DefaultContext[N]) IsBinaryOperator(name string) bool {
	_, ok := c.GetBinaryOperator(name)
	return ok
}

var _ Context[float64] = (*DefaultContext[float64])(nil)
