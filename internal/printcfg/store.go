// Package printcfg keeps the single print-layout configuration of the
// installation.
package printcfg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/creami/internal/kv"
	"github.com/dmitrijs2005/creami/internal/logging"
	"github.com/dmitrijs2005/creami/internal/models"
)

const Key = "printer-config"

// Patch carries the fields to change; nil fields are left alone. Margins
// are replaced as a whole.
type Patch struct {
	Name               *string
	PaperSize          *models.PaperSize
	Orientation        *models.Orientation
	Margins            *models.Margins
	Scale              *int
	ShowHeaders        *bool
	ShowFooters        *bool
	IncludeDate        *bool
	IncludePageNumbers *bool
}

func (p Patch) apply(cfg *models.PrintConfiguration) {
	if p.Name != nil {
		cfg.Name = *p.Name
	}
	if p.PaperSize != nil {
		cfg.PaperSize = *p.PaperSize
	}
	if p.Orientation != nil {
		cfg.Orientation = *p.Orientation
	}
	if p.Margins != nil {
		cfg.Margins = *p.Margins
	}
	if p.Scale != nil {
		cfg.Scale = *p.Scale
	}
	if p.ShowHeaders != nil {
		cfg.ShowHeaders = *p.ShowHeaders
	}
	if p.ShowFooters != nil {
		cfg.ShowFooters = *p.ShowFooters
	}
	if p.IncludeDate != nil {
		cfg.IncludeDate = *p.IncludeDate
	}
	if p.IncludePageNumbers != nil {
		cfg.IncludePageNumbers = *p.IncludePageNumbers
	}
}

type Store struct {
	kv  kv.Store
	log logging.Logger
}

func NewStore(store kv.Store, log logging.Logger) *Store {
	return &Store{kv: store, log: log.With("component", "printcfg")}
}

// Get returns the stored configuration decoded over the defaults, so records
// written before a field existed pick up its default. Unreadable records
// yield the defaults.
func (s *Store) Get(ctx context.Context) models.PrintConfiguration {
	cfg := models.DefaultPrintConfiguration()

	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.log.Warn(ctx, "print configuration unreadable, using defaults", "error", err)
		return cfg
	}
	if raw == nil {
		return cfg
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		s.log.Warn(ctx, "print configuration unreadable, using defaults", "error", err)
		return models.DefaultPrintConfiguration()
	}
	return cfg
}

// Save merges p onto the current configuration and persists the result.
func (s *Store) Save(ctx context.Context, p Patch) (models.PrintConfiguration, error) {
	cfg := s.Get(ctx)
	p.apply(&cfg)
	return cfg, s.put(ctx, cfg)
}

// Reset persists the defaults verbatim.
func (s *Store) Reset(ctx context.Context) error {
	return s.put(ctx, models.DefaultPrintConfiguration())
}

func (s *Store) put(ctx context.Context, cfg models.PrintConfiguration) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode print configuration: %w", err)
	}
	if err := s.kv.Set(ctx, Key, b); err != nil {
		return fmt.Errorf("save print configuration: %w", err)
	}
	return nil
}
