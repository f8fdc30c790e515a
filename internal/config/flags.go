package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/creami/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// components (-c) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-o", "-s", "-l"})

	fs := flag.NewFlagSet("creami", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the database file")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for exports and backups")
	autoSave := fs.Int("s", int(cfg.AutoSaveDelay.Seconds()), "auto-save delay (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *autoSave > 0 {
		cfg.AutoSaveDelay = time.Duration(*autoSave) * time.Second
	}
	return nil
}
