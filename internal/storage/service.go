package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/kv"
	"github.com/dmitrijs2005/creami/internal/logging"
	"github.com/dmitrijs2005/creami/internal/models"
)

// Keys owned by the storage service.
const (
	KeyArticles = "creami-articles"
	KeySettings = "creami-settings"
	KeyBackups  = "creami-backups"
	KeyLastSave = "creami-last-save"
)

// isoLayout matches the millisecond UTC timestamps of earlier exports.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

type articlesBlob struct {
	Articles  []models.Article `json:"articles"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version"`
}

// Service is the article storage. It is safe to share; the store does the
// locking.
type Service struct {
	store kv.Store
	log   logging.Logger
	now   func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store kv.Store, log logging.Logger, opts ...Option) *Service {
	s := &Service{store: store, log: log.With("component", "storage"), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(isoLayout)
}

// Save overwrites the stored list and stamps the last-save key, both in
// one store write.
func (s *Service) Save(ctx context.Context, articles []models.Article) error {
	if articles == nil {
		articles = []models.Article{}
	}

	ts := s.timestamp()
	b, err := json.Marshal(articlesBlob{Articles: articles, Timestamp: ts, Version: common.FormatVersion})
	if err != nil {
		return failClosed("save", KeyArticles, err)
	}

	err = s.store.SetMany(ctx,
		kv.Entry{Key: KeyArticles, Value: b},
		kv.Entry{Key: KeyLastSave, Value: []byte(ts)},
	)
	if err != nil {
		return failClosed("save", KeyArticles, err)
	}

	s.log.Debug(ctx, "articles saved", "count", len(articles))
	return nil
}

// Load returns the stored list, or an empty list when nothing usable is
// stored.
func (s *Service) Load(ctx context.Context) []models.Article {
	empty := []models.Article{}

	raw, err := s.store.Get(ctx, KeyArticles)
	if err != nil {
		return failOpen(ctx, s.log, "load", KeyArticles, err, empty)
	}
	if raw == nil {
		return empty
	}

	var blob articlesBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return failOpen(ctx, s.log, "load", KeyArticles, err, empty)
	}
	if blob.Articles == nil {
		return empty
	}
	return blob.Articles
}

// LastSaveTime returns when Save last succeeded.
func (s *Service) LastSaveTime(ctx context.Context) (time.Time, bool) {
	raw, err := s.store.Get(ctx, KeyLastSave)
	if err != nil || raw == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return failOpen(ctx, s.log, "last-save", KeyLastSave, err, time.Time{}), false
	}
	return t, true
}

// HasSavedData reports whether an article list has ever been saved.
func (s *Service) HasSavedData(ctx context.Context) bool {
	raw, err := s.store.Get(ctx, KeyArticles)
	return err == nil && raw != nil
}

// LoadSettings returns the stored settings over the defaults.
func (s *Service) LoadSettings(ctx context.Context) models.StorageSettings {
	settings := models.DefaultStorageSettings()

	raw, err := s.store.Get(ctx, KeySettings)
	if err != nil {
		return failOpen(ctx, s.log, "load-settings", KeySettings, err, settings)
	}
	if raw == nil {
		return settings
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return failOpen(ctx, s.log, "load-settings", KeySettings, err, models.DefaultStorageSettings())
	}
	return settings
}

func (s *Service) SaveSettings(ctx context.Context, settings models.StorageSettings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return failClosed("save-settings", KeySettings, err)
	}
	return failClosed("save-settings", KeySettings, s.store.Set(ctx, KeySettings, b))
}

// ClearAll removes every key owned by the service.
func (s *Service) ClearAll(ctx context.Context) error {
	err := s.store.Delete(ctx, KeyArticles, KeySettings, KeyBackups, KeyLastSave)
	if err != nil {
		return failClosed("clear", "*", err)
	}
	s.log.Info(ctx, "storage cleared")
	return nil
}
