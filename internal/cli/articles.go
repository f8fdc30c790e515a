package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/export"
	"github.com/dmitrijs2005/creami/internal/models"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func (a *App) Add(ctx context.Context) error {
	category, err := GetChoice(a.reader, "Category", names(models.Categories), a.out)
	if err != nil {
		return err
	}
	code, err := GetSimpleText(a.reader, "Article code (optional)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	unit, err := GetChoice(a.reader, "Unit of measure", names(models.Units), a.out)
	if err != nil {
		return err
	}
	priceText, err := GetSimpleText(a.reader, "Price (€)", a.out)
	if err != nil {
		return err
	}
	price, err := models.ParsePrice(priceText)
	if err != nil {
		return err
	}
	note, err := GetSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return err
	}

	art, err := a.session.Add(models.ArticleInput{
		Category:    category,
		Code:        code,
		Description: description,
		Unit:        unit,
		Price:       price,
		Note:        note,
	})
	if err != nil {
		return err
	}

	a.log.Debug(ctx, "article added", "id", art.ID)
	a.printf("Added %s %q (€ %s)\n", shortID(art.ID), art.Description, art.PriceText())
	return nil
}

func (a *App) Undo(ctx context.Context) error {
	art, ok := a.session.DeleteLast()
	if !ok {
		a.printf("Nothing to undo\n")
		return nil
	}
	a.printf("Removed %s %q\n", shortID(art.ID), art.Description)
	return nil
}

// List prints the visible articles: flat when a search is active, grouped
// by category otherwise.
func (a *App) List(ctx context.Context) error {
	visible := a.session.Visible()
	search := a.session.Search()

	if len(visible) == 0 {
		if search != "" {
			a.printf("No results for %q\n", search)
		} else {
			a.printf("The price list is empty\n")
		}
		return nil
	}

	if search != "" {
		a.printf("RISULTATI RICERCA (%d)\n", len(visible))
		return a.table(visible)
	}

	a.printf("LISTINO PREZZI\n")
	for _, g := range a.session.Grouped() {
		a.printf("\n== %s (%d) ==\n", g.Category, len(g.Articles))
		if err := a.table(g.Articles); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) table(articles []models.Article) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOD. ART.\tDESCRIZIONE\tU.M.\tPREZZO\tNOTE\tDATA")
	for _, art := range articles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t€ %s\t%s\t%s\n",
			shortID(art.ID), art.Code, art.Description, art.Unit, art.PriceText(), art.Note, art.InsertedDate)
	}
	return tw.Flush()
}

func (a *App) Search(ctx context.Context, args []string) error {
	a.session.SetSearch(strings.Join(args, " "))
	if a.session.Search() == "" {
		a.printf("Search cleared\n")
		return nil
	}
	a.printf("%d results for %q\n", len(a.session.Visible()), a.session.Search())
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	present := a.session.CategoriesPresent()
	if len(present) == 0 {
		a.printf("No categories yet\n")
		return nil
	}

	counts := make(map[models.Category]int)
	for _, art := range a.session.Articles() {
		counts[art.Category]++
	}
	for _, c := range present {
		a.printf("%-16s %d\n", c, counts[c])
	}
	return nil
}

// findArticle resolves a full id or a unique id prefix.
func (a *App) findArticle(ref string) (models.Article, error) {
	if art, ok := a.session.Find(ref); ok {
		return art, nil
	}

	var match []models.Article
	for _, art := range a.session.Articles() {
		if strings.HasPrefix(art.ID, ref) {
			match = append(match, art)
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return models.Article{}, fmt.Errorf("article %s: %w", ref, common.ErrNotFound)
	default:
		return models.Article{}, fmt.Errorf("article id %s is ambiguous (%d matches)", ref, len(match))
	}
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: show ID")
	}
	art, err := a.findArticle(args[0])
	if err != nil {
		return err
	}

	a.printf("ID:          %s\n", art.ID)
	a.printf("Categoria:   %s\n", art.Category)
	a.printf("Cod. Art.:   %s\n", art.Code)
	a.printf("Descrizione: %s\n", art.Description)
	a.printf("U.M.:        %s\n", art.Unit)
	a.printf("Prezzo:      € %s\n", art.PriceText())
	a.printf("Note:        %s\n", art.Note)
	a.printf("Inserito il: %s\n", art.InsertedDate)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s := export.Stats(a.session.Articles())

	a.printf("Articoli:      %d\n", s.Total)
	a.printf("Categorie:     %d %s\n", len(s.Categories), strings.Join(names(s.Categories), ", "))
	if !s.Earliest.IsZero() {
		a.printf("Inseriti dal:  %s al %s\n", s.Earliest.Format(common.DateLayout), s.Latest.Format(common.DateLayout))
	}
	a.printf("Prezzo medio:  € %s\n", s.AveragePrice.StringFixed(2))

	if t, ok := a.storage.LastSaveTime(ctx); ok {
		a.printf("Ultimo salvataggio: %s\n", t.Local().Format("02/01/2006 15:04:05"))
	}
	a.printf("Backup:        %d\n", len(a.storage.LoadBackups(ctx)))
	return nil
}
