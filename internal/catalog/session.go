// Package catalog holds the working copy of the price list for one
// interactive session: the article list, the active search and the
// grouping used for display.
package catalog

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/dmitrijs2005/creami/internal/models"
)

// Group is the articles of one category, in list order.
type Group struct {
	Category models.Category
	Articles []models.Article
}

// Session is safe for concurrent use; the autosave timer reads it from its
// own goroutine.
type Session struct {
	mu       sync.RWMutex
	articles []models.Article
	search   string
	onChange func()
	now      func() time.Time
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func NewSession(articles []models.Article, opts ...Option) *Session {
	s := &Session{
		articles: append([]models.Article(nil), articles...),
		onChange: func() {},
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OnChange registers fn to run after every change to the list, outside the
// session lock.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Session) changed() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	fn()
}

// Add validates in and appends the new article.
func (s *Session) Add(in models.ArticleInput) (models.Article, error) {
	a, err := models.NewArticle(in, s.now())
	if err != nil {
		return models.Article{}, err
	}

	s.mu.Lock()
	s.articles = append(s.articles, a)
	s.mu.Unlock()

	s.changed()
	return a, nil
}

// DeleteLast removes the most recently added article.
func (s *Session) DeleteLast() (models.Article, bool) {
	s.mu.Lock()
	if len(s.articles) == 0 {
		s.mu.Unlock()
		return models.Article{}, false
	}
	last := s.articles[len(s.articles)-1]
	s.articles = s.articles[:len(s.articles)-1]
	s.mu.Unlock()

	s.changed()
	return last, true
}

// Replace swaps the whole list, as after an import or a restore.
func (s *Session) Replace(articles []models.Article) {
	s.mu.Lock()
	s.articles = append([]models.Article(nil), articles...)
	s.mu.Unlock()

	s.changed()
}

// Articles returns a copy of the full list.
func (s *Session) Articles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Article{}, s.articles...)
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Find returns the article with the given id.
func (s *Session) Find(id string) (models.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	s.search = strings.TrimSpace(term)
	s.mu.Unlock()
}

func (s *Session) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

// Visible is the list narrowed by the search term: articles whose
// description or code contains it, ignoring case. With no search it is the
// full list. Exports and prints work on this list.
func (s *Session) Visible() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.search == "" {
		return append([]models.Article{}, s.articles...)
	}

	fold := cases.Fold()
	term := fold.String(s.search)

	out := []models.Article{}
	for _, a := range s.articles {
		if strings.Contains(fold.String(a.Description), term) || strings.Contains(fold.String(a.Code), term) {
			out = append(out, a)
		}
	}
	return out
}

// Grouped is Visible split by category, categories in first-seen order.
func (s *Session) Grouped() []Group {
	var groups []Group
	index := make(map[models.Category]int)

	for _, a := range s.Visible() {
		i, ok := index[a.Category]
		if !ok {
			i = len(groups)
			index[a.Category] = i
			groups = append(groups, Group{Category: a.Category})
		}
		groups[i].Articles = append(groups[i].Articles, a)
	}
	return groups
}

// CategoriesPresent lists the distinct categories of the full list in
// first-seen order.
func (s *Session) CategoriesPresent() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Category
	seen := make(map[models.Category]struct{})
	for _, a := range s.articles {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}
