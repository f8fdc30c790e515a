// Package export selects articles for an output and writes the tabular
// formats (CSV, XLSX) plus the list statistics.
package export

import (
	"github.com/dmitrijs2005/creami/internal/models"
)

// Filter returns the articles a scope covers, in input order. An "all"
// scope, or a category/single scope with an empty selector, returns the
// input unchanged.
func Filter(articles []models.Article, scope models.Scope) []models.Article {
	if scope.Kind == models.ScopeAll || scope.Value == "" {
		return articles
	}

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		switch scope.Kind {
		case models.ScopeCategory:
			if string(a.Category) == scope.Value {
				out = append(out, a)
			}
		case models.ScopeSingle:
			if a.ID == scope.Value {
				out = append(out, a)
			}
		}
	}
	return out
}

// effective collapses a scope without selector to ScopeAll, matching Filter.
func effective(scope models.Scope) models.ScopeKind {
	if scope.Value == "" {
		return models.ScopeAll
	}
	return scope.Kind
}

// Title is the document subtitle for a scope.
func Title(scope models.Scope) string {
	switch effective(scope) {
	case models.ScopeCategory:
		return "Categoria: " + scope.Value
	case models.ScopeSingle:
		return "Articolo Singolo"
	default:
		return "Listino Completo"
	}
}

// FileStem is the file name, without extension, of a scoped document.
func FileStem(scope models.Scope) string {
	switch effective(scope) {
	case models.ScopeCategory:
		return "categoria-" + scope.Value
	case models.ScopeSingle:
		return "articolo-singolo"
	default:
		return "listino-completo"
	}
}
