package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amink/durus/ent/historyentry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileDefaultsWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Profiles().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.XP != 0 || p.Level != 1 || len(p.Badges) != 0 || p.Streak != 0 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	p := DefaultProfile()
	p.XP = 150
	p.Level = 2
	p.Badges = []BadgeData{{
		ID:          "first_summary",
		Icon:        "📝",
		Name:        map[string]string{"en": "Writer Begins"},
		Description: map[string]string{"en": "Created your first summary"},
		Condition:   "summary_count >= 1",
		UnlockedAt:  time.Now(),
	}}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != 150 || got.Level != 2 {
		t.Fatalf("got xp=%d level=%d", got.XP, got.Level)
	}
	if len(got.Badges) != 1 || got.Badges[0].ID != "first_summary" {
		t.Fatalf("unexpected badges: %+v", got.Badges)
	}
	if got.Badges[0].Name["en"] != "Writer Begins" {
		t.Fatalf("badge name lost: %+v", got.Badges[0])
	}

	// A second save overwrites rather than inserting a second row.
	p.XP = 200
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != 200 {
		t.Fatalf("expected overwrite, got xp=%d", got.XP)
	}
}

func TestStatsIncrement(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Stats()

	rec, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Summary != 0 || rec.Quiz != 0 || rec.Plan != 0 {
		t.Fatalf("expected all-zero defaults, got %+v", rec)
	}

	for i := 0; i < 3; i++ {
		if rec, err = repo.Increment(ctx, ActionQuiz); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if _, err = repo.Increment(ctx, ActionSummary); err != nil {
		t.Fatalf("increment: %v", err)
	}

	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Quiz != 3 || rec.Summary != 1 || rec.Plan != 0 {
		t.Fatalf("unexpected counters: %+v", rec)
	}
}

func TestHistorySaveListCap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.History()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < HistoryKeep+1; i++ {
		err := repo.Save(ctx, HistoryRecord{
			ID:        uuid.NewString(),
			Category:  CategorySummary,
			Title:     fmt.Sprintf("topic %d", i),
			Payload:   map[string]any{"content": fmt.Sprintf("summary %d", i)},
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx, CategorySummary)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != HistoryKeep {
		t.Fatalf("expected %d entries, got %d", HistoryKeep, len(list))
	}
	if list[0].Title != fmt.Sprintf("topic %d", HistoryKeep) {
		t.Fatalf("expected most recent first, got %q", list[0].Title)
	}
	// The oldest entry was pruned.
	for _, rec := range list {
		if rec.Title == "topic 0" {
			t.Fatal("oldest entry should have been pruned")
		}
	}
}

func TestHistoryDeleteAt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.History()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, HistoryRecord{
			ID:        uuid.NewString(),
			Category:  CategoryQuiz,
			Title:     fmt.Sprintf("quiz %d", i),
			Payload:   map[string]any{},
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	// List order is quiz 2, quiz 1, quiz 0. Delete index 0 (quiz 2).
	if err := repo.DeleteAt(ctx, CategoryQuiz, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err := repo.List(ctx, CategoryQuiz)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "quiz 1" || list[1].Title != "quiz 0" {
		t.Fatalf("unexpected order after delete: %+v", list)
	}

	// Out-of-range delete is a no-op.
	if err := repo.DeleteAt(ctx, CategoryQuiz, 99); err != nil {
		t.Fatalf("out-of-range delete: %v", err)
	}
	list, _ = repo.List(ctx, CategoryQuiz)
	if len(list) != 2 {
		t.Fatalf("no-op delete changed list: %+v", list)
	}
}

func TestHistorySkipsCorruptPayload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.History()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, HistoryRecord{
			ID:        uuid.NewString(),
			Category:  CategorySummary,
			Title:     fmt.Sprintf("good %d", i),
			Payload:   map[string]any{"content": "ok"},
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	// Write a row with an unreadable payload straight through the client,
	// timestamped newest so it would list first if it were readable.
	_, err := s.Client().HistoryEntry.Create().
		SetEntryID(uuid.NewString()).
		SetCategory(historyentry.CategorySummary).
		SetTitle("corrupt").
		SetPayload("{not json").
		SetCreatedAt(base.Add(time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	list, err := repo.List(ctx, CategorySummary)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected corrupt entry skipped, got %d entries", len(list))
	}
	if list[0].Title != "good 1" {
		t.Fatalf("expected most recent readable entry first, got %q", list[0].Title)
	}

	// Delete indexes count only readable entries.
	if err := repo.DeleteAt(ctx, CategorySummary, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = repo.List(ctx, CategorySummary)
	if len(list) != 1 || list[0].Title != "good 0" {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestLLMEventAppendQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "summary",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[user]\nsummarize this",
		ResponseBody: "a summary",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz",
		InputTokens: 80, OutputTokens: 200, Success: false, ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Purpose != "quiz" {
		t.Fatalf("expected newest first, got %q", events[0].Purpose)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "summary"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ResponseBody != "a summary" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 || usage[0].Purpose != "quiz" || usage[1].InputTokens != 120 {
		t.Fatalf("unexpected usage: %+v", usage)
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}
	if byModel[0].Requests != 2 || byModel[0].InputTokens != 200 || byModel[0].OutputTokens != 500 {
		t.Fatalf("unexpected model totals: %+v", byModel[0])
	}
}

func TestPreferenceLanguage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Preferences()

	code, err := repo.Language(ctx)
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if code != "" {
		t.Fatalf("expected empty default, got %q", code)
	}

	if err := repo.SetLanguage(ctx, "ar"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.SetLanguage(ctx, "fr"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	code, err = repo.Language(ctx)
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if code != "fr" {
		t.Fatalf("expected fr, got %q", code)
	}
}
