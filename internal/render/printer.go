package render

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/dmitrijs2005/creami/internal/logging"
	"github.com/dmitrijs2005/creami/internal/models"
)

// Opener shows a file to the user, typically in the system browser.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// CommandOpener starts Command with the path appended. An empty Command
// picks the platform default.
type CommandOpener struct {
	Command string
}

func (o CommandOpener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	argv := o.argv()
	// The browser outlives the request, so ctx does not bound the process.
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

func (o CommandOpener) argv() []string {
	if f := strings.Fields(o.Command); len(f) > 0 {
		return f
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// ConfigSource yields the active print configuration.
type ConfigSource interface {
	Get(ctx context.Context) models.PrintConfiguration
}

type Printer struct {
	configs ConfigSource
	opener  Opener
	company string
	dir     string
	log     logging.Logger
	now     func() time.Time
}

type PrinterOption func(*Printer)

// WithTempDir sets where print pages are written; the default is os.TempDir.
func WithTempDir(dir string) PrinterOption {
	return func(p *Printer) { p.dir = dir }
}

func WithPrinterClock(now func() time.Time) PrinterOption {
	return func(p *Printer) { p.now = now }
}

func NewPrinter(configs ConfigSource, opener Opener, company string, log logging.Logger, opts ...PrinterOption) *Printer {
	p := &Printer{
		configs: configs,
		opener:  opener,
		company: company,
		log:     log.With("component", "printer"),
		now:     time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Print renders the scoped list with the active configuration and hands the
// page to the opener, whose print dialog fires on load. When the page
// cannot be written or opened nothing happens.
func (p *Printer) Print(ctx context.Context, articles []models.Article, scope models.Scope) {
	doc := NewDocument(p.company, articles, scope, p.configs.Get(ctx), p.now())

	f, err := os.CreateTemp(p.dir, "creami-print-*.html")
	if err != nil {
		p.log.Debug(ctx, "print skipped", "error", err)
		return
	}

	err = HTML(f, doc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		p.log.Debug(ctx, "print skipped", "error", err)
		return
	}

	if err := p.opener.Open(ctx, f.Name()); err != nil {
		p.log.Debug(ctx, "print skipped", "path", f.Name(), "error", err)
		return
	}

	p.log.Info(ctx, "print page opened", "path", f.Name(), "articles", len(doc.Articles))
}
