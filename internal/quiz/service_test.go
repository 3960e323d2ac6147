package quiz

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

type memHistory struct{ saved []store.HistoryRecord }

func (m *memHistory) Save(ctx context.Context, rec store.HistoryRecord) error {
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

const quizJSON = `{
	"title": "Algebra Basics",
	"questions": [
		{"question": "2+2?", "type": "fill_blank", "correctAnswer": "4"},
		{"question": "Is 7 prime?", "type": "true_false", "correctAnswer": "True",
		 "options": ["True", "False"], "explanation": "7 has no divisors"}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(quizJSON)})
	svc, _ := newTestService(mock, &memHistory{})

	q, err := svc.Generate(context.Background(), GenerateInput{
		Topic:    "Algebra",
		Level:    i18n.Middle,
		Count:    2,
		Language: i18n.English,
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.Title != "Algebra Basics" || len(q.Questions) != 2 {
		t.Fatalf("quiz = %+v", q)
	}
	if q.Topic != "Algebra" || q.Level != i18n.Middle {
		t.Errorf("request parameters not carried: topic=%q level=%q", q.Topic, q.Level)
	}

	req := mock.LastCall()
	if req.Schema == nil || req.Schema.Name != "study-quiz" {
		t.Error("generation should request the quiz schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Generate 2 questions") {
		t.Errorf("prompt missing count: %q", req.Messages[0].Content)
	}
}

func TestGenerate_EmptyTopic(t *testing.T) {
	svc, _ := newTestService(llm.NewMockProvider(), &memHistory{})
	if _, err := svc.Generate(context.Background(), GenerateInput{Topic: " "}); err == nil {
		t.Fatal("expected error for empty topic")
	}
}

func TestGenerate_NoQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "Empty", "questions": []}`),
	})
	svc, _ := newTestService(mock, &memHistory{})
	if _, err := svc.Generate(context.Background(), GenerateInput{Topic: "x"}); err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestSubmit(t *testing.T) {
	feedback := `{"note": "Good work on the basics.", "reviewTopics": ["prime numbers"]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(feedback)})
	hist := &memHistory{}
	svc, profiles := newTestService(mock, hist)

	q := &Quiz{
		Title: "Algebra Basics",
		Topic: "Algebra",
		Level: i18n.Middle,
		Questions: []Question{
			{Question: "2+2?", Type: FillBlank, CorrectAnswer: "4"},
			{Question: "Is 7 prime?", Type: TrueFalse, CorrectAnswer: "True"},
		},
	}
	answers := []Answer{{Text: "4"}, {Text: "False"}}

	res, err := svc.Submit(context.Background(), q, answers, i18n.English)
	if err != nil {
		t.Fatal(err)
	}
	if res.Score.Raw != 1 || res.Score.Max != 20 {
		t.Errorf("score = %+v", res.Score)
	}
	if len(res.Incorrect) != 1 {
		t.Errorf("incorrect = %v", res.Incorrect)
	}
	if res.Feedback.Note != "Good work on the basics." {
		t.Errorf("feedback = %+v", res.Feedback)
	}

	p, _ := profiles.Load(context.Background())
	if p.XP != progress.XPQuiz {
		t.Errorf("xp = %d, want %d", p.XP, progress.XPQuiz)
	}

	if len(hist.saved) != 1 || hist.saved[0].Category != store.CategoryQuiz {
		t.Fatalf("history = %+v", hist.saved)
	}
	if hist.saved[0].Payload["raw"] != 1 {
		t.Errorf("history payload raw = %v", hist.saved[0].Payload["raw"])
	}
}

func TestSubmit_EvaluationFailureNonFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc, _ := newTestService(mock, &memHistory{})

	q := &Quiz{
		Level:     i18n.High,
		Questions: []Question{{Question: "q", Type: TrueFalse, CorrectAnswer: "True"}},
	}
	res, err := svc.Submit(context.Background(), q, []Answer{{Text: "True"}}, i18n.English)
	if err != nil {
		t.Fatalf("submit should survive evaluation failure: %v", err)
	}
	if res.Score.Raw != 1 {
		t.Errorf("score = %+v", res.Score)
	}
	if res.Feedback.Note != "" {
		t.Errorf("feedback should be empty on failure: %+v", res.Feedback)
	}
}

func TestSubmit_QuizMasterOnFifth(t *testing.T) {
	var responses []llm.MockResponse
	for i := 0; i < 5; i++ {
		responses = append(responses, llm.MockResponse{
			Content: json.RawMessage(`{"note": "ok", "reviewTopics": []}`),
		})
	}
	mock := llm.NewMockProvider(responses...)
	svc, _ := newTestService(mock, &memHistory{})

	q := &Quiz{
		Level:     i18n.High,
		Questions: []Question{{Question: "q", Type: TrueFalse, CorrectAnswer: "True"}},
	}

	var lastUnlocked []progress.Badge
	for i := 0; i < 5; i++ {
		res, err := svc.Submit(context.Background(), q, nil, i18n.English)
		if err != nil {
			t.Fatal(err)
		}
		lastUnlocked = res.Unlocked
		if i < 4 && len(res.Unlocked) != 0 {
			t.Fatalf("submission %d unlocked %v, want none", i+1, res.Unlocked)
		}
	}
	if len(lastUnlocked) != 1 || lastUnlocked[0].ID != progress.BadgeQuizMaster {
		t.Errorf("fifth submission unlocked %v, want [quiz_master]", lastUnlocked)
	}
}
