package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amink/durus/internal/store"
)

type fakeRepo struct {
	saved   []store.HistoryRecord
	saveErr error
}

func (f *fakeRepo) Save(ctx context.Context, rec store.HistoryRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, cat store.Category) ([]store.HistoryRecord, error) {
	var out []store.HistoryRecord
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].Category == cat {
			out = append(out, f.saved[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteAt(ctx context.Context, cat store.Category, index int) error {
	list, _ := f.List(ctx, cat)
	if index < 0 || index >= len(list) {
		return nil
	}
	target := list[index].ID
	for i, rec := range f.saved {
		if rec.ID == target {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestSaveAssignsIdentity(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	rec, err := svc.SaveSummary(context.Background(), "Photosynthesis", map[string]any{"summary": "..."})
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" {
		t.Error("expected generated ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
	if rec.Category != store.CategorySummary {
		t.Errorf("category = %s, want summary", rec.Category)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("persisted %d records, want 1", len(repo.saved))
	}

	rec2, err := svc.SaveQuiz(context.Background(), "Algebra", map[string]any{"score": 8})
	if err != nil {
		t.Fatal(err)
	}
	if rec2.ID == rec.ID {
		t.Error("expected distinct IDs")
	}
	if rec2.Category != store.CategoryQuiz {
		t.Errorf("category = %s, want quiz", rec2.Category)
	}
}

func TestSavePersistFailure(t *testing.T) {
	repo := &fakeRepo{saveErr: &store.StorageError{Op: "history save", Err: errors.New("disk full")}}
	svc := NewService(repo)

	_, err := svc.SaveSummary(context.Background(), "t", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var se *store.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %T", err)
	}
	if len(repo.saved) != 0 {
		t.Error("nothing should be persisted on failure")
	}
}

func TestListSeparatesCategories(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.SaveSummary(ctx, "s1", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SaveQuiz(ctx, "q1", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SaveSummary(ctx, "s2", nil); err != nil {
		t.Fatal(err)
	}

	sums, err := svc.Summaries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 || sums[0].Title != "s2" || sums[1].Title != "s1" {
		t.Errorf("summaries = %v, want [s2 s1]", titles(sums))
	}

	quizzes, err := svc.Quizzes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(quizzes) != 1 || quizzes[0].Title != "q1" {
		t.Errorf("quizzes = %v, want [q1]", titles(quizzes))
	}
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if _, err := svc.SaveSummary(ctx, title, nil); err != nil {
			t.Fatal(err)
		}
	}

	// Most-recent-first, so index 1 is "b".
	if err := svc.Delete(ctx, store.CategorySummary, 1); err != nil {
		t.Fatal(err)
	}
	sums, _ := svc.Summaries(ctx)
	if len(sums) != 2 || sums[0].Title != "c" || sums[1].Title != "a" {
		t.Errorf("after delete = %v, want [c a]", titles(sums))
	}

	// Out of range is a no-op.
	if err := svc.Delete(ctx, store.CategorySummary, 99); err != nil {
		t.Fatal(err)
	}
	sums, _ = svc.Summaries(ctx)
	if len(sums) != 2 {
		t.Errorf("out-of-range delete changed the list: %v", titles(sums))
	}
}

func titles(recs []store.HistoryRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}
