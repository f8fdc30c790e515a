package config

import (
	"time"
)

// Config holds runtime settings for the creami CLI.
//
// OpenCommand is the program that shows print pages; empty selects the
// platform default.
type Config struct {
	DBPath        string
	ExportDir     string
	AutoSaveDelay time.Duration
	CompanyName   string
	LogLevel      string
	OpenCommand   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "creami.db"
	c.ExportDir = "exports"
	c.AutoSaveDelay = 2 * time.Second
	c.CompanyName = "TERMOEXPERT SRLU"
	c.LogLevel = "info"
	c.OpenCommand = ""
}

// Load builds a Config from defaults, then the config file named in args
// (if any), then the flags in args. Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
