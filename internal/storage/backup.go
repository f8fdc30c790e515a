package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/models"
)

// CreateBackup puts a snapshot at the front of the backup list and keeps
// only the first settings.MaxBackups entries.
func (s *Service) CreateBackup(ctx context.Context, articles []models.Article, settings models.StorageSettings) error {
	if articles == nil {
		articles = []models.Article{}
	}

	snapshot := models.BackupSnapshot{
		Articles:  articles,
		Settings:  settings,
		Timestamp: s.timestamp(),
		Version:   common.FormatVersion,
	}

	limit := settings.MaxBackups
	if limit <= 0 {
		limit = models.DefaultStorageSettings().MaxBackups
	}

	backups := append([]models.BackupSnapshot{snapshot}, s.LoadBackups(ctx)...)
	if len(backups) > limit {
		backups = backups[:limit]
	}

	b, err := json.Marshal(backups)
	if err != nil {
		return failClosed("backup", KeyBackups, err)
	}
	if err := s.store.Set(ctx, KeyBackups, b); err != nil {
		return failClosed("backup", KeyBackups, err)
	}

	s.log.Info(ctx, "backup created", "articles", len(articles), "kept", len(backups))
	return nil
}

// LoadBackups returns the snapshots, newest first.
func (s *Service) LoadBackups(ctx context.Context) []models.BackupSnapshot {
	empty := []models.BackupSnapshot{}

	raw, err := s.store.Get(ctx, KeyBackups)
	if err != nil {
		return failOpen(ctx, s.log, "load-backups", KeyBackups, err, empty)
	}
	if raw == nil {
		return empty
	}

	var backups []models.BackupSnapshot
	if err := json.Unmarshal(raw, &backups); err != nil {
		return failOpen(ctx, s.log, "load-backups", KeyBackups, err, empty)
	}
	return backups
}

// RestoreBackup returns the articles of the snapshot at index (0 = newest).
// The caller decides whether to save them.
func (s *Service) RestoreBackup(ctx context.Context, index int) ([]models.Article, error) {
	backups := s.LoadBackups(ctx)
	if index < 0 || index >= len(backups) {
		return nil, fmt.Errorf("backup %d: %w", index, common.ErrNotFound)
	}

	articles := backups[index].Articles
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}
