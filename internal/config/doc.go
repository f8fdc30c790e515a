// Package config loads runtime configuration for the creami CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config; the format
//     follows the extension (.yaml/.yml, anything else is JSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-o string   directory receiving exports and backups
//	-s int      auto-save delay (seconds)
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "2s" or integer
// nanoseconds:
//
//	{
//	  "db_path": "creami.db",
//	  "export_dir": "exports",
//	  "auto_save_delay": "2s",
//	  "company_name": "TERMOEXPERT SRLU",
//	  "log_level": "info",
//	  "open_command": "xdg-open"
//	}
package config
