package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/creami/internal/flagx"
	"github.com/dmitrijs2005/creami/internal/timex"
)

// fileConfig is a DTO used only for decoding config files. Empty fields
// leave the current value alone.
type fileConfig struct {
	DBPath        string         `json:"db_path" yaml:"db_path"`
	ExportDir     string         `json:"export_dir" yaml:"export_dir"`
	AutoSaveDelay timex.Duration `json:"auto_save_delay" yaml:"auto_save_delay"`
	CompanyName   string         `json:"company_name" yaml:"company_name"`
	LogLevel      string         `json:"log_level" yaml:"log_level"`
	OpenCommand   string         `json:"open_command" yaml:"open_command"`
}

// parseFile overlays cfg with the file given by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DBPath, fc.DBPath)
	set(&cfg.ExportDir, fc.ExportDir)
	set(&cfg.CompanyName, fc.CompanyName)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.OpenCommand, fc.OpenCommand)

	if fc.AutoSaveDelay.Duration > 0 {
		cfg.AutoSaveDelay = time.Duration(fc.AutoSaveDelay.Duration)
	}
}
