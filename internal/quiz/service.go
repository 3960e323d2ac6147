package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/store"
)

// GenerateInput describes one quiz generation request.
type GenerateInput struct {
	Topic    string
	Level    i18n.EducationLevel
	Count    int
	Language i18n.Language
}

// SubmitResult is the outcome of grading a finished quiz.
type SubmitResult struct {
	Score     Score
	Incorrect []string
	Feedback  Feedback

	// Unlocked lists badges earned by this submission, if any.
	Unlocked []progress.Badge
}

// Service runs the quiz flow: generation, local grading, AI evaluation,
// and the gamification/history side effects.
type Service struct {
	provider llm.Provider
	progress *progress.Service
	history  *history.Service
	log      *zap.Logger
}

// NewService creates a quiz service.
func NewService(provider llm.Provider, prog *progress.Service, hist *history.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, progress: prog, history: hist, log: log}
}

// Generate produces a quiz for the given topic, level and question count.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, fmt.Errorf("quiz topic is required")
	}
	if input.Count < 1 {
		input.Count = 5
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratePrompt(input)},
		},
		Schema:    QuizSchema,
		MaxTokens: 8192,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var q Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("parsing quiz response: %w", err)
	}
	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("quiz generation failed: no questions returned")
	}

	q.Topic = input.Topic
	q.Level = input.Level
	return &q, nil
}

// Submit grades the quiz, awards XP, asks the gateway for performance
// feedback, and saves the result to history. Feedback, gamification and
// history failures never abort the submission; grading always succeeds.
func (s *Service) Submit(ctx context.Context, q *Quiz, answers []Answer, lang i18n.Language) (*SubmitResult, error) {
	result := &SubmitResult{
		Score:     Grade(q, answers),
		Incorrect: Incorrect(q, answers),
	}

	_, unlocked, err := s.progress.RecordAction(ctx, store.ActionQuiz)
	if err != nil {
		s.log.Warn("recording quiz action failed", zap.Error(err))
	}
	result.Unlocked = unlocked

	fb, err := s.Evaluate(ctx, q, result.Score, result.Incorrect, lang)
	if err != nil {
		s.log.Warn("quiz evaluation failed", zap.Error(err))
	} else {
		result.Feedback = fb
	}

	if _, err := s.history.SaveQuiz(ctx, q.Title, map[string]any{
		"topic":  q.Topic,
		"level":  string(q.Level),
		"score":  result.Score.Scaled,
		"max":    result.Score.Max,
		"raw":    result.Score.Raw,
		"total":  result.Score.Total,
		"note":   result.Feedback.Note,
		"review": result.Feedback.ReviewTopics,
	}); err != nil {
		s.log.Warn("saving quiz to history failed", zap.Error(err))
	}

	return result, nil
}

// Evaluate asks the gateway for a performance note and review topics.
func (s *Service) Evaluate(ctx context.Context, q *Quiz, score Score, incorrect []string, lang i18n.Language) (Feedback, error) {
	ctx = llm.WithPurpose(ctx, "quiz-eval")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluatePrompt(q, score, incorrect, lang)},
		},
		Schema:    FeedbackSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return Feedback{}, fmt.Errorf("quiz evaluation failed: %w", err)
	}

	var fb Feedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return Feedback{}, fmt.Errorf("parsing evaluation response: %w", err)
	}
	return fb, nil
}

func buildGeneratePrompt(input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a diverse quiz about %q for %s level students in %s.\n", input.Topic, input.Level, input.Language)
	fmt.Fprintf(&b, "Generate %d questions.\n", input.Count)
	b.WriteString("Rules:\n")
	b.WriteString("1. Mix question types: multiple_choice, true_false, fill_blank, matching, and table.\n")
	b.WriteString("2. For 'matching', provide 'matchingPairs'.\n")
	b.WriteString("3. For 'table', provide 'tableHeaders' and 'tableRows' (full correct content). The user will fill in blanks.\n")
	b.WriteString("4. For 'true_false' in Arabic, use options [\"صحيح\", \"خطأ\"].\n")
	b.WriteString("5. Ensure strict JSON format matching the schema.")
	return b.String()
}

func buildEvaluatePrompt(q *Quiz, score Score, incorrect []string, lang i18n.Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student took a quiz on %q (Level: %s).\n", q.Title, q.Level)
	fmt.Fprintf(&b, "Score: %.1f/%d.\n", score.Scaled, score.Max)
	b.WriteString("The student made mistakes on these questions:\n")
	if len(incorrect) == 0 {
		b.WriteString("None\n")
	}
	for _, line := range incorrect {
		b.WriteString("- " + line + "\n")
	}
	b.WriteString("\nProvide:\n")
	fmt.Fprintf(&b, "1. A constructive, encouraging note in %s.\n", lang)
	b.WriteString("2. A list of 3-5 specific topics they should review to improve.")
	return b.String()
}
