// Package render produces the printable price list: an HTML page opened in
// the system browser for printing, a paginated PDF and a Markdown preview.
package render

import (
	"time"

	"github.com/dmitrijs2005/creami/internal/export"
	"github.com/dmitrijs2005/creami/internal/models"
)

const systemName = "Sistema di Gestione Listino Prezzi"

// Document is the price list to render. Articles are already filtered by
// Scope.
type Document struct {
	Company   string
	Scope     models.Scope
	Articles  []models.Article
	Config    models.PrintConfiguration
	Generated time.Time
}

func NewDocument(company string, articles []models.Article, scope models.Scope, cfg models.PrintConfiguration, now time.Time) Document {
	return Document{
		Company:   company,
		Scope:     scope,
		Articles:  export.Filter(articles, scope),
		Config:    cfg,
		Generated: now,
	}
}

// PrintTitle is the heading of the printed page.
func (d Document) PrintTitle() string {
	if d.Scope.Value == "" {
		return "LISTINO PREZZI COMPLETO"
	}
	switch d.Scope.Kind {
	case models.ScopeCategory:
		return "LISTINO PREZZI - CATEGORIA: " + d.Scope.Value
	case models.ScopeSingle:
		return "ARTICOLO SINGOLO"
	default:
		return "LISTINO PREZZI COMPLETO"
	}
}
