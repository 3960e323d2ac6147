// Package history manages the bounded lists of past summaries and quizzes.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amink/durus/internal/store"
)

// Service assigns identity to results and persists them through the
// bounded history repository. Each category keeps at most
// store.HistoryKeep entries, most recent first.
type Service struct {
	repo store.HistoryRepo
	now  func() time.Time
}

// NewService creates a history service over the given repository.
func NewService(repo store.HistoryRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SaveSummary stores a generated summary and returns the stored record.
func (s *Service) SaveSummary(ctx context.Context, title string, payload map[string]any) (store.HistoryRecord, error) {
	return s.save(ctx, store.CategorySummary, title, payload)
}

// SaveQuiz stores a completed quiz and returns the stored record.
func (s *Service) SaveQuiz(ctx context.Context, title string, payload map[string]any) (store.HistoryRecord, error) {
	return s.save(ctx, store.CategoryQuiz, title, payload)
}

func (s *Service) save(ctx context.Context, cat store.Category, title string, payload map[string]any) (store.HistoryRecord, error) {
	rec := store.HistoryRecord{
		ID:        uuid.NewString(),
		Category:  cat,
		Title:     title,
		Payload:   payload,
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return store.HistoryRecord{}, err
	}
	return rec, nil
}

// Summaries returns saved summaries, most recent first.
func (s *Service) Summaries(ctx context.Context) ([]store.HistoryRecord, error) {
	return s.repo.List(ctx, store.CategorySummary)
}

// Quizzes returns saved quizzes, most recent first.
func (s *Service) Quizzes(ctx context.Context) ([]store.HistoryRecord, error) {
	return s.repo.List(ctx, store.CategoryQuiz)
}

// Delete removes the entry at index in most-recent-first order.
// Out-of-range indexes are ignored.
func (s *Service) Delete(ctx context.Context, cat store.Category, index int) error {
	return s.repo.DeleteAt(ctx, cat, index)
}
