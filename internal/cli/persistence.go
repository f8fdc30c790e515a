package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/creami/internal/storage"
)

// Save writes the session list immediately.
func (a *App) Save(ctx context.Context) error {
	articles := a.session.Articles()
	if err := a.storage.Save(ctx, articles); err != nil {
		return err
	}
	a.printf("Saved %d articles\n", len(articles))
	return nil
}

func (a *App) Backup(ctx context.Context) error {
	articles := a.session.Articles()
	path, err := a.storage.ComprehensiveBackup(ctx, a.exportDir, articles)
	if err != nil {
		return err
	}
	a.printf("Backup of %d articles written to %s\n", len(articles), path)
	return nil
}

func (a *App) Backups(ctx context.Context) error {
	backups := a.storage.LoadBackups(ctx)
	if len(backups) == 0 {
		a.printf("No backups\n")
		return nil
	}
	for i, b := range backups {
		a.printf("%2d  %s  %d articles\n", i, b.Timestamp, len(b.Articles))
	}
	return nil
}

// Restore takes a snapshot index from the backups list or the path of a
// backup file.
func (a *App) Restore(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: restore N|FILE")
	}

	if n, err := strconv.Atoi(args[0]); err == nil {
		articles, err := a.storage.RestoreBackup(ctx, n)
		if err != nil {
			return err
		}
		a.session.Replace(articles)
		a.printf("Restored %d articles from backup %d\n", len(articles), n)
		return nil
	}

	return a.fromFile(ctx, strings.Join(args, " "), a.storage.RestoreFromFile)
}

func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: import FILE")
	}
	return a.fromFile(ctx, strings.Join(args, " "), a.storage.ImportFromFile)
}

func (a *App) fromFile(ctx context.Context, path string, load func(context.Context, io.Reader) storage.ImportResult) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res := load(ctx, f)
	if !res.Success {
		return errors.New(res.Message)
	}

	a.session.Replace(res.Articles)
	a.printf("%s\n", res.Message)
	return nil
}

// Clear erases every stored key after confirmation and empties the list.
func (a *App) Clear(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete all articles, backups and settings?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Cancelled\n")
		return nil
	}

	a.session.Replace(nil)
	if err := a.saver.Flush(ctx); err != nil {
		return err
	}
	if err := a.storage.ClearAll(ctx); err != nil {
		return err
	}

	a.log.Info(ctx, "all data cleared")
	a.printf("All data cleared\n")
	return nil
}
