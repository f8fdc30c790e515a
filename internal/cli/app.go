package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/creami/internal/autosave"
	"github.com/dmitrijs2005/creami/internal/catalog"
	"github.com/dmitrijs2005/creami/internal/logging"
	"github.com/dmitrijs2005/creami/internal/models"
	"github.com/dmitrijs2005/creami/internal/printcfg"
	"github.com/dmitrijs2005/creami/internal/storage"
)

// Printer sends a scoped list to the print dialog.
type Printer interface {
	Print(ctx context.Context, articles []models.Article, scope models.Scope)
}

// Deps are the collaborators of an App. In and Out default to the process
// standard streams.
type Deps struct {
	Storage   *storage.Service
	PrintCfg  *printcfg.Store
	Session   *catalog.Session
	AutoSave  *autosave.Debouncer
	Printer   Printer
	Company   string
	ExportDir string
	Log       logging.Logger
	In        io.Reader
	Out       io.Writer
}

type App struct {
	storage   *storage.Service
	printCfg  *printcfg.Store
	session   *catalog.Session
	saver     *autosave.Debouncer
	printer   Printer
	company   string
	exportDir string
	log       logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	now         func() time.Time
}

func NewApp(d Deps) *App {
	in, out := d.In, d.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	a := &App{
		storage:   d.Storage,
		printCfg:  d.PrintCfg,
		session:   d.Session,
		saver:     d.AutoSave,
		printer:   d.Printer,
		company:   d.Company,
		exportDir: d.ExportDir,
		log:       d.Log,
		reader:    bufio.NewReader(in),
		out:       out,
		now:       time.Now,
	}
	if f, ok := in.(*os.File); ok {
		a.interactive = isTerminal(int(f.Fd()))
	}
	return a
}

// Run starts the REPL and blocks until the user exits. Pending auto-saves
// are flushed before it returns.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started", "articles", a.session.Len())
	if a.interactive {
		fmt.Fprintln(a.out, "CREAMI - Listino Prezzi (type 'help' for commands)")
	}

	runREPL(ctx, a, a.prompt, a.reader)

	if err := a.saver.Stop(ctx); err != nil {
		a.log.Error(ctx, "final save failed", "error", err)
		return fmt.Errorf("final save: %w", err)
	}
	return nil
}

// prompt is empty when input is not a terminal, so piped scripts produce
// only command output.
func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	return fmt.Sprintf("creami %s> ", a.status(context.Background()))
}

func (a *App) status(ctx context.Context) string {
	parts := []string{fmt.Sprintf("%d articoli", a.session.Len())}
	if s := a.session.Search(); s != "" {
		parts = append(parts, fmt.Sprintf("search %q", s))
	}
	switch {
	case a.saver.Pending():
		parts = append(parts, "saving...")
	default:
		if t, ok := a.storage.LastSaveTime(ctx); ok {
			parts = append(parts, "saved "+t.Local().Format("15:04:05"))
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
