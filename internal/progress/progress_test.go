package progress

import (
	"context"
	"testing"
	"time"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/store"
)

type fakeProfiles struct {
	rec *store.ProfileRecord
}

func (f *fakeProfiles) Load(ctx context.Context) (*store.ProfileRecord, error) {
	if f.rec == nil {
		return store.DefaultProfile(), nil
	}
	cp := *f.rec
	cp.Badges = append([]store.BadgeData(nil), f.rec.Badges...)
	return &cp, nil
}

func (f *fakeProfiles) Save(ctx context.Context, p *store.ProfileRecord) error {
	cp := *p
	cp.Badges = append([]store.BadgeData(nil), p.Badges...)
	f.rec = &cp
	return nil
}

type fakeStats struct {
	rec store.ActionStatsRecord
}

func (f *fakeStats) Load(ctx context.Context) (*store.ActionStatsRecord, error) {
	cp := f.rec
	return &cp, nil
}

func (f *fakeStats) Increment(ctx context.Context, kind store.ActionKind) (*store.ActionStatsRecord, error) {
	switch kind {
	case store.ActionSummary:
		f.rec.Summary++
	case store.ActionQuiz:
		f.rec.Quiz++
	case store.ActionPlan:
		f.rec.Plan++
	}
	cp := f.rec
	return &cp, nil
}

func newTestService() *Service {
	s := NewService(&fakeProfiles{}, &fakeStats{})
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{-5, 1},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 100},
		{3, 400},
		{4, 900},
		{0, 0},
	}
	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestProgressFraction(t *testing.T) {
	// Level 2 spans 100..400 XP.
	if got := ProgressFraction(100, 2); got != 0 {
		t.Errorf("at level floor, fraction = %v, want 0", got)
	}
	if got := ProgressFraction(250, 2); got != 0.5 {
		t.Errorf("midway, fraction = %v, want 0.5", got)
	}
	if got := ProgressFraction(400, 2); got != 1 {
		t.Errorf("at level ceiling, fraction = %v, want 1", got)
	}
	if got := ProgressFraction(50, 2); got != 0 {
		t.Errorf("below floor clamps to 0, got %v", got)
	}
	if got := ProgressFraction(9999, 2); got != 1 {
		t.Errorf("above ceiling clamps to 1, got %v", got)
	}
}

func TestAddXP_Additive(t *testing.T) {
	ctx := context.Background()

	split := newTestService()
	if _, err := split.AddXP(ctx, 30); err != nil {
		t.Fatal(err)
	}
	p1, err := split.AddXP(ctx, 70)
	if err != nil {
		t.Fatal(err)
	}

	whole := newTestService()
	p2, err := whole.AddXP(ctx, 100)
	if err != nil {
		t.Fatal(err)
	}

	if p1.XP != p2.XP {
		t.Errorf("split award xp = %d, single award xp = %d", p1.XP, p2.XP)
	}
	if p1.Level != p2.Level {
		t.Errorf("split award level = %d, single award level = %d", p1.Level, p2.Level)
	}
}

func TestAddXP_LevelThresholds(t *testing.T) {
	ctx := context.Background()

	s := newTestService()
	p, err := s.AddXP(ctx, 50)
	if err != nil {
		t.Fatal(err)
	}
	if p.XP != 50 || p.Level != 1 {
		t.Errorf("after 50 XP: xp=%d level=%d, want 50/1", p.XP, p.Level)
	}

	p, err = s.AddXP(ctx, 50)
	if err != nil {
		t.Fatal(err)
	}
	if p.XP != 100 || p.Level != 2 {
		t.Errorf("after 100 XP: xp=%d level=%d, want 100/2", p.XP, p.Level)
	}
}

func TestAddXP_LevelNeverDecreases(t *testing.T) {
	ctx := context.Background()
	profiles := &fakeProfiles{rec: &store.ProfileRecord{XP: 0, Level: 5}}
	s := NewService(profiles, &fakeStats{})

	p, err := s.AddXP(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if p.Level != 5 {
		t.Errorf("level = %d, want 5 (levels never drop)", p.Level)
	}
}

func TestRecordAction_Awards(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		kind store.ActionKind
		xp   int
	}{
		{store.ActionSummary, 50},
		{store.ActionQuiz, 100},
		{store.ActionPlan, 75},
	}
	for _, tt := range tests {
		s := newTestService()
		p, _, err := s.RecordAction(ctx, tt.kind)
		if err != nil {
			t.Fatal(err)
		}
		if p.XP != tt.xp {
			t.Errorf("%s award = %d, want %d", tt.kind, p.XP, tt.xp)
		}
	}
}

func TestRecordAction_FirstSummaryBadge(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	p, unlocked, err := s.RecordAction(ctx, store.ActionSummary)
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != BadgeFirstSummary {
		t.Fatalf("unlocked = %v, want [first_summary]", unlocked)
	}
	if len(p.Badges) != 1 {
		t.Fatalf("profile badges = %d, want 1", len(p.Badges))
	}

	// Second summary unlocks nothing new.
	p, unlocked, err = s.RecordAction(ctx, store.ActionSummary)
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 0 {
		t.Errorf("second summary unlocked %v, want none", unlocked)
	}
	if len(p.Badges) != 1 {
		t.Errorf("profile badges = %d, want 1", len(p.Badges))
	}
}

func TestRecordAction_QuizMasterAtFive(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	for i := 1; i <= 4; i++ {
		_, unlocked, err := s.RecordAction(ctx, store.ActionQuiz)
		if err != nil {
			t.Fatal(err)
		}
		if len(unlocked) != 0 {
			t.Fatalf("quiz %d unlocked %v, want none", i, unlocked)
		}
	}

	p, unlocked, err := s.RecordAction(ctx, store.ActionQuiz)
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != BadgeQuizMaster {
		t.Fatalf("fifth quiz unlocked %v, want [quiz_master]", unlocked)
	}
	if p.XP != 500 {
		t.Errorf("xp after 5 quizzes = %d, want 500", p.XP)
	}
}

func TestRecordAction_PlannerProEveryPlan(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, unlocked, err := s.RecordAction(ctx, store.ActionPlan)
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != BadgePlannerPro {
		t.Fatalf("first plan unlocked %v, want [planner_pro]", unlocked)
	}
}

func TestUnlockBadge_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	p, err := s.UnlockBadge(ctx, BadgeQuizMaster)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Badges) != 1 {
		t.Fatalf("badges = %d, want 1", len(p.Badges))
	}

	p, err = s.UnlockBadge(ctx, BadgeQuizMaster)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Badges) != 1 {
		t.Fatalf("badges after repeat unlock = %d, want 1", len(p.Badges))
	}
}

func TestUnlockBadge_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	p, err := s.UnlockBadge(ctx, "no_such_badge")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Badges) != 0 {
		t.Fatalf("badges = %d, want 0", len(p.Badges))
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	var got []Update
	unsub := s.Subscribe(func(u Update) { got = append(got, u) })

	if _, err := s.AddXP(ctx, 100); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("updates = %d, want 1", len(got))
	}
	if !got[0].LeveledUp {
		t.Error("expected LeveledUp on crossing 100 XP")
	}

	unsub()
	if _, err := s.AddXP(ctx, 10); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("updates after unsubscribe = %d, want 1", len(got))
	}
}

func TestCatalogComplete(t *testing.T) {
	if len(Catalog) != 3 {
		t.Fatalf("catalog size = %d, want 3", len(Catalog))
	}
	for _, b := range Catalog {
		if b.Icon == "" {
			t.Errorf("badge %s has no icon", b.ID)
		}
		for _, lang := range i18n.Languages {
			if b.Name[lang] == "" {
				t.Errorf("badge %s missing %s name", b.ID, lang)
			}
			if b.Description[lang] == "" {
				t.Errorf("badge %s missing %s description", b.ID, lang)
			}
		}
	}
}
