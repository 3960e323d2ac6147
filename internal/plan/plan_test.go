package plan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

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

const planJSON = `{
	"title": "Finals Week Prep",
	"schedule": [
		{"day": "Monday", "sessions": [
			{"time": "16:00", "subject": "Math", "activity": "Practice problems", "notes": "Focus on algebra"}
		]},
		{"day": "Tuesday", "sessions": [
			{"time": "17:00", "subject": "Physics", "activity": "Review notes"}
		]}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(planJSON)})
	profiles := &memProfiles{}
	svc := NewService(mock, progress.NewService(profiles, &memStats{}), nil)

	res, err := svc.Generate(context.Background(), Input{
		Subjects:    "Math, Physics",
		HoursPerDay: 3,
		Goal:        "pass finals",
		Language:    i18n.French,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Plan.Title != "Finals Week Prep" || len(res.Plan.Schedule) != 2 {
		t.Fatalf("plan = %+v", res.Plan)
	}
	if res.Plan.ID == "" || res.Plan.CreatedAt.IsZero() {
		t.Error("plan should get an ID and creation time")
	}

	// First plan awards XP and unlocks planner_pro.
	p, _ := profiles.Load(context.Background())
	if p.XP != progress.XPPlan {
		t.Errorf("xp = %d, want %d", p.XP, progress.XPPlan)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != progress.BadgePlannerPro {
		t.Errorf("unlocked = %v, want [planner_pro]", res.Unlocked)
	}

	req := mock.LastCall()
	if req.Schema == nil || req.Schema.Name != "study-plan" {
		t.Error("generation should request the plan schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Available hours per day: 3") {
		t.Errorf("prompt missing hours: %q", req.Messages[0].Content)
	}
}

func TestGenerate_EmptySubjects(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), progress.NewService(&memProfiles{}, &memStats{}), nil)
	if _, err := svc.Generate(context.Background(), Input{Subjects: ""}); err == nil {
		t.Fatal("expected error for empty subjects")
	}
}

func TestGenerate_EmptySchedule(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "Empty", "schedule": []}`),
	})
	svc := NewService(mock, progress.NewService(&memProfiles{}, &memStats{}), nil)
	if _, err := svc.Generate(context.Background(), Input{Subjects: "Math"}); err == nil {
		t.Fatal("expected error for empty schedule")
	}
}

func TestGenerate_GatewayFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrBadRequest{Status: 403, Err: errors.New("denied")},
	})
	profiles := &memProfiles{}
	svc := NewService(mock, progress.NewService(profiles, &memStats{}), nil)

	if _, err := svc.Generate(context.Background(), Input{Subjects: "Math"}); err == nil {
		t.Fatal("expected error")
	}
	p, _ := profiles.Load(context.Background())
	if p.XP != 0 {
		t.Errorf("no XP should be awarded on failure, got %d", p.XP)
	}
}
