package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/creami/internal/export"
	"github.com/dmitrijs2005/creami/internal/filex"
	"github.com/dmitrijs2005/creami/internal/models"
	"github.com/dmitrijs2005/creami/internal/render"
)

// scope parses scope arguments, resolving a single-article id prefix to the
// full id.
func (a *App) scope(args []string) (models.Scope, error) {
	scope, err := models.ParseScope(args)
	if err != nil {
		return models.Scope{}, err
	}
	if scope.Kind == models.ScopeSingle {
		art, err := a.findArticle(scope.Value)
		if err != nil {
			return models.Scope{}, err
		}
		scope.Value = art.ID
	}
	return scope, nil
}

func (a *App) document(ctx context.Context, scope models.Scope) render.Document {
	return render.NewDocument(a.company, a.session.Visible(), scope, a.printCfg.Get(ctx), a.now())
}

// Print works on the visible list, so an active search narrows it.
func (a *App) Print(ctx context.Context, args []string) error {
	scope, err := a.scope(args)
	if err != nil {
		return err
	}
	a.printer.Print(ctx, a.session.Visible(), scope)
	a.printf("Print page requested (%s)\n", export.Title(scope))
	return nil
}

func (a *App) Preview(ctx context.Context, args []string) error {
	scope, err := a.scope(args)
	if err != nil {
		return err
	}
	out, err := render.Preview(a.document(ctx, scope))
	if err != nil {
		return err
	}
	a.printf("%s\n", out)
	return nil
}

// Export writes the visible list in the requested format to the export
// directory.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: export csv|json|pdf|xlsx [SCOPE]")
	}
	format := strings.ToLower(args[0])
	scope, err := a.scope(args[1:])
	if err != nil {
		return err
	}

	selected := export.Filter(a.session.Visible(), scope)

	var (
		name  string
		write func(w io.Writer) error
	)
	switch format {
	case "csv":
		name = scopedName(export.CSVFileName, scope, ".csv")
		write = func(w io.Writer) error { return export.WriteCSV(w, selected) }
	case "xlsx":
		name = scopedName(export.XLSXFileName, scope, ".xlsx")
		write = func(w io.Writer) error { return export.WriteXLSX(w, selected) }
	case "json":
		name = a.storage.ExportFileName()
		write = func(w io.Writer) error { return a.storage.ExportToJSON(w, selected) }
	case "pdf":
		doc := a.document(ctx, scope)
		name = render.PDFFileName(scope)
		write = func(w io.Writer) error { return render.PDF(w, doc) }
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	path, err := filex.WriteFile(a.exportDir, name, write)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "export written", "format", format, "path", path, "articles", len(selected))
	a.printf("Exported %d articles to %s\n", len(selected), path)
	return nil
}

// scopedName keeps the default name for the whole list and derives one
// from the scope otherwise.
func scopedName(def string, scope models.Scope, ext string) string {
	if export.FileStem(scope) == export.FileStem(models.AllScope()) {
		return def
	}
	return export.FileStem(scope) + ext
}
