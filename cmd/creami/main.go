package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/creami/internal/autosave"
	"github.com/dmitrijs2005/creami/internal/buildinfo"
	"github.com/dmitrijs2005/creami/internal/catalog"
	"github.com/dmitrijs2005/creami/internal/cli"
	"github.com/dmitrijs2005/creami/internal/config"
	"github.com/dmitrijs2005/creami/internal/kv"
	"github.com/dmitrijs2005/creami/internal/logging"
	"github.com/dmitrijs2005/creami/internal/printcfg"
	"github.com/dmitrijs2005/creami/internal/render"
	"github.com/dmitrijs2005/creami/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error(context.Background(), err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, db, err := kv.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	articles := storage.NewService(store, logger)
	printCfg := printcfg.NewStore(store, logger)

	session := catalog.NewSession(articles.Load(ctx))
	saver := autosave.New(cfg.AutoSaveDelay, func(ctx context.Context) error {
		return articles.Save(ctx, session.Articles())
	}, logger)
	session.OnChange(saver.Trigger)

	printer := render.NewPrinter(printCfg, render.CommandOpener{Command: cfg.OpenCommand}, cfg.CompanyName, logger)

	app := cli.NewApp(cli.Deps{
		Storage:   articles,
		PrintCfg:  printCfg,
		Session:   session,
		AutoSave:  saver,
		Printer:   printer,
		Company:   cfg.CompanyName,
		ExportDir: cfg.ExportDir,
		Log:       logger,
	})

	initSignalHandler(ctx, cancel, saver, logger)

	return app.Run(ctx)
}

// initSignalHandler saves pending changes and exits on SIGINT/SIGTERM. The
// REPL blocks on stdin, so cancelling ctx alone would not stop it.
func initSignalHandler(ctx context.Context, cancel context.CancelFunc, saver *autosave.Debouncer, logger logging.Logger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		select {
		case <-sigs:
		case <-ctx.Done():
			return
		}
		cancel()

		if err := saver.Stop(context.Background()); err != nil {
			logger.Error(context.Background(), "final save failed", "error", err)
			os.Exit(1)
		}
		fmt.Println("\nBye!")
		os.Exit(0)
	}()
}
