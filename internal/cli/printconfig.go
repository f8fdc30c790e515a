package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/creami/internal/models"
	"github.com/dmitrijs2005/creami/internal/printcfg"
)

// Input ranges of the print settings.
const (
	minScale  = 50
	maxScale  = 200
	maxMargin = 50.0
)

var paperSizes = []models.PaperSize{models.PaperA4, models.PaperLetter, models.PaperLegal, models.PaperA3}

func (a *App) Config(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}

	switch sub {
	case "show":
		a.showPrintConfig(a.printCfg.Get(ctx))
		return nil
	case "reset":
		if err := a.printCfg.Reset(ctx); err != nil {
			return err
		}
		a.printf("Print configuration reset\n")
		return nil
	case "set":
		if len(args) < 3 {
			return errors.New("usage: config set KEY VALUE")
		}
		patch, err := parsePatch(strings.ToLower(args[1]), args[2:])
		if err != nil {
			return err
		}
		cfg, err := a.printCfg.Save(ctx, patch)
		if err != nil {
			return err
		}
		a.showPrintConfig(cfg)
		return nil
	default:
		return fmt.Errorf("unknown config command %q", sub)
	}
}

func (a *App) showPrintConfig(cfg models.PrintConfiguration) {
	w, h := cfg.PaperSize.Dimensions()
	a.printf("name         %s\n", cfg.Name)
	a.printf("paper        %s (%gx%gmm)\n", cfg.PaperSize, w, h)
	a.printf("orientation  %s\n", cfg.Orientation)
	a.printf("margins      %g %g %g %g mm\n", cfg.Margins.Top, cfg.Margins.Right, cfg.Margins.Bottom, cfg.Margins.Left)
	a.printf("scale        %d%%\n", cfg.Scale)
	a.printf("headers      %t\n", cfg.ShowHeaders)
	a.printf("footers      %t\n", cfg.ShowFooters)
	a.printf("date         %t\n", cfg.IncludeDate)
	a.printf("pagenumbers  %t\n", cfg.IncludePageNumbers)
}

// parsePatch turns "config set" arguments into a one-field patch. Margins
// take one value for all sides or four in top, right, bottom, left order.
func parsePatch(key string, values []string) (printcfg.Patch, error) {
	var p printcfg.Patch
	value := values[0]

	switch key {
	case "name":
		name := strings.Join(values, " ")
		p.Name = &name

	case "paper":
		for _, s := range paperSizes {
			if strings.EqualFold(value, string(s)) {
				size := s
				p.PaperSize = &size
				return p, nil
			}
		}
		return p, fmt.Errorf("unknown paper size %q", value)

	case "orientation":
		o := models.Orientation(strings.ToLower(value))
		if o != models.OrientationPortrait && o != models.OrientationLandscape {
			return p, fmt.Errorf("orientation must be portrait or landscape")
		}
		p.Orientation = &o

	case "margins":
		m, err := parseMargins(values)
		if err != nil {
			return p, err
		}
		p.Margins = &m

	case "scale":
		n, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
		if err != nil || n < minScale || n > maxScale {
			return p, fmt.Errorf("scale must be a whole number between %d and %d", minScale, maxScale)
		}
		p.Scale = &n

	case "headers", "footers", "date", "pagenumbers":
		b, err := parseBool(value)
		if err != nil {
			return p, err
		}
		switch key {
		case "headers":
			p.ShowHeaders = &b
		case "footers":
			p.ShowFooters = &b
		case "date":
			p.IncludeDate = &b
		default:
			p.IncludePageNumbers = &b
		}

	default:
		return p, fmt.Errorf("unknown setting %q", key)
	}
	return p, nil
}

func parseMargins(values []string) (models.Margins, error) {
	if len(values) != 1 && len(values) != 4 {
		return models.Margins{}, errors.New("margins take 1 or 4 values")
	}

	mm := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
		if err != nil || f < 0 || f > maxMargin {
			return models.Margins{}, fmt.Errorf("margin %q must be between 0 and %g mm", v, maxMargin)
		}
		mm[i] = f
	}

	if len(mm) == 1 {
		return models.Margins{Top: mm[0], Right: mm[0], Bottom: mm[0], Left: mm[0]}, nil
	}
	return models.Margins{Top: mm[0], Right: mm[1], Bottom: mm[2], Left: mm[3]}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "si", "sì":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%q is not on/off", s)
	}
	return b, nil
}
