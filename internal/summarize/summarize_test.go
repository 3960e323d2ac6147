package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/store"
)

type memProfiles struct{ rec *store.ProfileRecord }

func (m *memProfiles) Load(ctx context.Context) (*store.ProfileRecord, error) {
	if m.rec == nil {
		return store.DefaultProfile(), nil
	}
	cp := *m.rec
	return &cp, nil
}
func (m *memProfiles) Save(ctx context.Context, p *store.ProfileRecord) error {
	cp := *p
	m.rec = &cp
	return nil
}

type memStats struct{ rec store.ActionStatsRecord }

func (m *memStats) Load(ctx context.Context) (*store.ActionStatsRecord, error) {
	cp := m.rec
	return &cp, nil
}
func (m *memStats) Increment(ctx context.Context, kind store.ActionKind) (*store.ActionStatsRecord, error) {
	switch kind {
	case store.ActionSummary:
		m.rec.Summary++
	case store.ActionQuiz:
		m.rec.Quiz++
	case store.ActionPlan:
		m.rec.Plan++
	}
	cp := m.rec
	return &cp, nil
}

type memHistory struct {
	saved   []store.HistoryRecord
	saveErr error
}

func (m *memHistory) Save(ctx context.Context, rec store.HistoryRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, rec)
	return nil
}
func (m *memHistory) List(ctx context.Context, cat store.Category) ([]store.HistoryRecord, error) {
	return nil, nil
}
func (m *memHistory) DeleteAt(ctx context.Context, cat store.Category, index int) error {
	return nil
}

func newTestService(mock *llm.MockProvider, hist *memHistory) (*Service, *memProfiles) {
	profiles := &memProfiles{}
	prog := progress.NewService(profiles, &memStats{})
	return NewService(mock, prog, history.NewService(hist), nil), profiles
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("## Photosynthesis\n\nPlants convert light."),
	})
	hist := &memHistory{}
	svc, profiles := newTestService(mock, hist)

	res, err := svc.Generate(context.Background(), Input{
		Content:  "Photosynthesis lesson text",
		Level:    i18n.High,
		Language: i18n.English,
		Mode:     ModeStandard,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Markdown, "Photosynthesis") {
		t.Errorf("unexpected markdown: %q", res.Markdown)
	}

	// The flow awards XP and unlocks first_summary.
	p, _ := profiles.Load(context.Background())
	if p.XP != progress.XPSummary {
		t.Errorf("xp = %d, want %d", p.XP, progress.XPSummary)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != progress.BadgeFirstSummary {
		t.Errorf("unlocked = %v, want [first_summary]", res.Unlocked)
	}

	// The summary lands in history.
	if len(hist.saved) != 1 {
		t.Fatalf("history entries = %d, want 1", len(hist.saved))
	}
	if hist.saved[0].Category != store.CategorySummary {
		t.Errorf("history category = %s, want summary", hist.saved[0].Category)
	}
}

func TestGenerate_ExamReviewPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("review sheet")})
	svc, _ := newTestService(mock, &memHistory{})

	res, err := svc.Generate(context.Background(), Input{
		Content:  "chapter 3",
		Level:    i18n.Middle,
		Language: i18n.Arabic,
		Mode:     ModeExamReview,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "Exam Review" {
		t.Errorf("title = %q, want Exam Review", res.Title)
	}

	req := mock.LastCall()
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Exam Review") || !strings.Contains(prompt, "Common Pitfalls") {
		t.Errorf("exam review prompt missing structure: %q", prompt)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	svc, _ := newTestService(llm.NewMockProvider(), &memHistory{})

	if _, err := svc.Generate(context.Background(), Input{Content: "  "}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestGenerate_GatewayFailureAbortsFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	hist := &memHistory{}
	svc, profiles := newTestService(mock, hist)

	_, err := svc.Generate(context.Background(), Input{Content: "text"})
	if err == nil {
		t.Fatal("expected error")
	}

	// No XP, no history on failure.
	p, _ := profiles.Load(context.Background())
	if p.XP != 0 {
		t.Errorf("xp = %d, want 0", p.XP)
	}
	if len(hist.saved) != 0 {
		t.Errorf("history entries = %d, want 0", len(hist.saved))
	}
}

func TestGenerate_HistoryFailureDoesNotAbort(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("a summary")})
	hist := &memHistory{saveErr: &store.StorageError{Op: "history save", Err: errors.New("disk full")}}
	svc, _ := newTestService(mock, hist)

	res, err := svc.Generate(context.Background(), Input{Content: "text"})
	if err != nil {
		t.Fatalf("generation should survive history failure: %v", err)
	}
	if res.Markdown != "a summary" {
		t.Errorf("markdown = %q", res.Markdown)
	}
}

func TestGenerate_AttachmentForwarded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("summary of file")})
	svc, _ := newTestService(mock, &memHistory{})

	att := &llm.Attachment{MIMEType: "image/png", Data: []byte{1, 2, 3}, Name: "notes.png"}
	res, err := svc.Generate(context.Background(), Input{Attachment: att})
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "File: notes.png" {
		t.Errorf("title = %q", res.Title)
	}

	req := mock.LastCall()
	if len(req.Messages[0].Attachments) != 1 || req.Messages[0].Attachments[0].MIMEType != "image/png" {
		t.Errorf("attachment not forwarded: %+v", req.Messages[0].Attachments)
	}
}
