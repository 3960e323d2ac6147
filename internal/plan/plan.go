// Package plan generates one-week structured study plans via the AI gateway.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/store"
)

// Session is a single study block within a day.
type Session struct {
	Time     string `json:"time"`
	Subject  string `json:"subject"`
	Activity string `json:"activity"`
	Notes    string `json:"notes,omitempty"`
}

// Day is one day of the plan.
type Day struct {
	Day      string    `json:"day"`
	Sessions []Session `json:"sessions"`
}

// StudyPlan is a generated one-week plan.
type StudyPlan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Schedule  []Day     `json:"schedule"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input describes one plan request.
type Input struct {
	Subjects    string
	HoursPerDay int
	Goal        string
	Language    i18n.Language
}

// Result is a finished plan plus the gamification outcome.
type Result struct {
	Plan     *StudyPlan
	Unlocked []progress.Badge
}

// planSchema defines the JSON schema for study plan responses.
var planSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A one-week structured study schedule",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day": map[string]any{"type": "string"},
						"sessions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"time":     map[string]any{"type": "string"},
									"subject":  map[string]any{"type": "string"},
									"activity": map[string]any{"type": "string"},
									"notes":    map[string]any{"type": "string"},
								},
								"required": []any{"time", "subject", "activity"},
							},
						},
					},
					"required": []any{"day", "sessions"},
				},
			},
		},
		"required": []any{"title", "schedule"},
	},
}

// Service runs the planner flow.
type Service struct {
	provider llm.Provider
	progress *progress.Service
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a plan service.
func NewService(provider llm.Provider, prog *progress.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, progress: prog, log: log, now: time.Now}
}

// Generate produces a study plan and awards the plan XP. Gamification
// failures never abort the flow.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Subjects) == "" {
		return nil, fmt.Errorf("plan subjects are required")
	}
	if input.HoursPerDay < 1 {
		input.HoursPerDay = 2
	}

	ctx = llm.WithPurpose(ctx, "plan-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(input)},
		},
		Schema:    planSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	var p StudyPlan
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("parsing plan response: %w", err)
	}
	if len(p.Schedule) == 0 {
		return nil, fmt.Errorf("plan generation failed: empty schedule")
	}
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()

	result := &Result{Plan: &p}

	_, unlocked, err := s.progress.RecordAction(ctx, store.ActionPlan)
	if err != nil {
		s.log.Warn("recording plan action failed", zap.Error(err))
	}
	result.Unlocked = unlocked

	return result, nil
}

func buildPrompt(input Input) string {
	var b strings.Builder
	b.WriteString("Create a 1-week structured study plan.\n")
	fmt.Fprintf(&b, "Subjects: %s.\n", input.Subjects)
	fmt.Fprintf(&b, "Available hours per day: %d.\n", input.HoursPerDay)
	fmt.Fprintf(&b, "Goal: %s.\n", input.Goal)
	fmt.Fprintf(&b, "Language: %s.\n", input.Language)
	b.WriteString("Return valid JSON matching the schema.")
	return b.String()
}
