package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/filex"
	"github.com/dmitrijs2005/creami/internal/models"
)

// ImportResult is the outcome of an import. Failures are reported here,
// never as an error.
type ImportResult struct {
	Success  bool
	Articles []models.Article
	Message  string
}

func importFailed(msg string) ImportResult {
	return ImportResult{Success: false, Articles: []models.Article{}, Message: msg}
}

type exportBlob struct {
	Articles  []models.Article `json:"articles"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version"`
	Type      string           `json:"type"`
}

// ExportToJSON writes the export envelope, indented, to w.
func (s *Service) ExportToJSON(w io.Writer, articles []models.Article) error {
	if articles == nil {
		articles = []models.Article{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(exportBlob{
		Articles:  articles,
		Timestamp: s.timestamp(),
		Version:   common.FormatVersion,
		Type:      common.ExportType,
	})
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}

// ExportFileName is the default name of a JSON export made today.
func (s *Service) ExportFileName() string {
	return fmt.Sprintf("cremai-listino-%s.json", s.now().Format("2006-01-02"))
}

// ImportFromFile reads a JSON export from r. The top level must hold an
// "articles" array and every element must pass models.Article.Check;
// elements without an id get a fresh one.
func (s *Service) ImportFromFile(ctx context.Context, r io.Reader) ImportResult {
	content, err := io.ReadAll(r)
	if err != nil {
		s.log.Warn(ctx, "import read failed", "error", err)
		return importFailed("Failed to read file")
	}
	if err := ctx.Err(); err != nil {
		return importFailed("Import cancelled")
	}

	var envelope struct {
		Articles json.RawMessage `json:"articles"`
	}
	if err := json.Unmarshal(content, &envelope); err != nil {
		s.log.Warn(ctx, "import parse failed", "error", err)
		return importFailed("Failed to parse JSON file")
	}

	raw := bytes.TrimSpace(envelope.Articles)
	if len(raw) == 0 || raw[0] != '[' {
		return importFailed("Invalid data format in backup file")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return importFailed("Invalid data format in backup file")
	}

	articles := make([]models.Article, 0, len(items))
	for i, item := range items {
		var a models.Article
		if err := json.Unmarshal(item, &a); err != nil {
			return importFailed(fmt.Sprintf("Invalid article at position %d: %v", i+1, err))
		}
		if strings.TrimSpace(a.ID) == "" {
			a.ID = uuid.NewString()
		}
		if err := a.Check(); err != nil {
			return importFailed(fmt.Sprintf("Invalid article at position %d: %v", i+1, err))
		}
		articles = append(articles, a)
	}

	s.log.Info(ctx, "articles imported", "count", len(articles))
	return ImportResult{
		Success:  true,
		Articles: articles,
		Message:  fmt.Sprintf("Successfully imported %d articles", len(articles)),
	}
}

// RestoreFromFile imports r and, on success, saves the imported list.
func (s *Service) RestoreFromFile(ctx context.Context, r io.Reader) ImportResult {
	res := s.ImportFromFile(ctx, r)
	if !res.Success {
		return res
	}

	if err := s.Save(ctx, res.Articles); err != nil {
		return importFailed(err.Error())
	}

	res.Message = fmt.Sprintf("Successfully restored %d articles", len(res.Articles))
	return res
}

// ComprehensiveBackup writes a timestamped JSON export into dir and also
// pushes a snapshot onto the stored backup list. It returns the file path.
func (s *Service) ComprehensiveBackup(ctx context.Context, dir string, articles []models.Article) (string, error) {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(s.timestamp())
	name := fmt.Sprintf("cremai-backup-%s.json", stamp)

	path, err := filex.WriteFile(dir, name, func(w io.Writer) error {
		return s.ExportToJSON(w, articles)
	})
	if err != nil {
		return "", err
	}

	if err := s.CreateBackup(ctx, articles, s.LoadSettings(ctx)); err != nil {
		return path, err
	}
	return path, nil
}
