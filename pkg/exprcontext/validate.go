package exprcontext

import (
	"strings"
	"unicode"

	"github.com/Neo-Ciber94/prexel-go/pkg/exprerr"
)

// tokenKind names the category of symbol being validated, used only to
// word error messages.
type tokenKind int

const (
	kindVariable tokenKind = iota
	kindConstant
	kindOperator
	kindFunction
)

func (k tokenKind) String() string {
	switch k {
	case kindVariable:
		return "Variable"
	case kindConstant:
		return "Constant"
	case kindOperator:
		return "Operator"
	case kindFunction:
		return "Function"
	default:
		return "Token"
	}
}

// checkTokenName validates a symbol name before it is registered into a
// Context: it must be non-empty and free of whitespace/control characters.
func checkTokenName(kind tokenKind, name string) error {
	if strings.TrimSpace(name) == "" {
		return exprerr.New(exprerr.Empty, "%s name is empty", kind)
	}

	for _, r := range name {
		if unicode.IsSpace(r) {
			return exprerr.New(exprerr.InvalidInput, "%s names cannot contain whitespace: `%s`", kind, name)
		}
		if unicode.IsControl(r) {
			return exprerr.New(exprerr.InvalidInput, "%s names cannot contain control characters: `%s`", kind, name)
		}
	}

	return nil
}
