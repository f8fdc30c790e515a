package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/creami/internal/common"
)

// ScopeKind selects which articles an export or print covers.
type ScopeKind string

const (
	ScopeAll      ScopeKind = "all"
	ScopeCategory ScopeKind = "category"
	ScopeSingle   ScopeKind = "single"
)

// Scope is a ScopeKind plus its selector: the category for ScopeCategory,
// the article id for ScopeSingle.
type Scope struct {
	Kind  ScopeKind
	Value string
}

func AllScope() Scope { return Scope{Kind: ScopeAll} }
func CategoryScope(c Category) Scope { return Scope{Kind: ScopeCategory, Value: string(c)} }
func SingleScope(id string) Scope { return Scope{Kind: ScopeSingle, Value: id} }

// ParseScope reads CLI arguments: none or "all", "category <NAME>",
// "single <ID>". Category names are upper-cased.
func ParseScope(args []string) (Scope, error) {
	if len(args) == 0 {
		return AllScope(), nil
	}

	switch ScopeKind(strings.ToLower(args[0])) {
	case ScopeAll:
		return AllScope(), nil
	case ScopeCategory:
		if len(args) < 2 {
			return Scope{}, fmt.Errorf("%w: category name is missing", common.ErrInvalidScope)
		}
		return CategoryScope(Category(strings.ToUpper(args[1]))), nil
	case ScopeSingle:
		if len(args) < 2 {
			return Scope{}, fmt.Errorf("%w: article id is missing", common.ErrInvalidScope)
		}
		return SingleScope(args[1]), nil
	default:
		return Scope{}, fmt.Errorf("%w: %q", common.ErrInvalidScope, args[0])
	}
}
