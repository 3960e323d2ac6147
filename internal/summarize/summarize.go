// Package summarize turns lesson content into study summaries and exam
// review sheets via the AI gateway.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/store"
)

// Mode selects the output structure.
type Mode string

const (
	// ModeStandard produces a concept-focused summary of the content.
	ModeStandard Mode = "standard"
	// ModeExamReview produces a structured exam review sheet.
	ModeExamReview Mode = "exam_review"
)

// Input describes one summarization request.
type Input struct {
	Content  string
	Level    i18n.EducationLevel
	Language i18n.Language
	Mode     Mode

	// Attachment is optional lesson material (image or PDF) to read
	// alongside, or instead of, the text content.
	Attachment *llm.Attachment
}

// Result is a finished summary plus the gamification outcome.
type Result struct {
	Markdown string
	Title    string

	// Unlocked lists badges earned by this action, if any.
	Unlocked []progress.Badge
}

// Service runs the summarization flow: generate, then award XP and save
// to history. Progress and history failures never abort a generation;
// the summary is still returned.
type Service struct {
	provider llm.Provider
	progress *progress.Service
	history  *history.Service
	log      *zap.Logger
}

// NewService creates a summarize service.
func NewService(provider llm.Provider, prog *progress.Service, hist *history.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, progress: prog, history: hist, log: log}
}

// Generate produces a summary for the given input.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Content) == "" && input.Attachment == nil {
		return nil, fmt.Errorf("nothing to summarize: provide content or an attachment")
	}

	ctx = llm.WithPurpose(ctx, "summarize")

	msg := llm.Message{
		Role:    llm.RoleUser,
		Content: buildPrompt(input),
	}
	if input.Attachment != nil {
		msg.Attachments = []llm.Attachment{*input.Attachment}
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{msg},
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	markdown := strings.TrimSpace(resp.Text())
	if markdown == "" {
		return nil, fmt.Errorf("summary generation failed: empty response")
	}

	result := &Result{
		Markdown: markdown,
		Title:    titleFor(input),
	}

	_, unlocked, err := s.progress.RecordAction(ctx, store.ActionSummary)
	if err != nil {
		s.log.Warn("recording summary action failed", zap.Error(err))
	}
	result.Unlocked = unlocked

	if _, err := s.history.SaveSummary(ctx, result.Title, map[string]any{
		"content": markdown,
		"level":   string(input.Level),
		"mode":    string(input.Mode),
	}); err != nil {
		s.log.Warn("saving summary to history failed", zap.Error(err))
	}

	return result, nil
}

func buildPrompt(input Input) string {
	var b strings.Builder

	if input.Mode == ModeExamReview {
		fmt.Fprintf(&b, "Create a comprehensive Exam Review. Target audience: %s student. Language: %s.\n", input.Level, input.Language)
		b.WriteString("Structure:\n")
		b.WriteString("1. Key Concepts\n")
		b.WriteString("2. Critical Definitions\n")
		b.WriteString("3. Common Pitfalls\n")
		b.WriteString("4. Quick Revision Checklist.\n")
		b.WriteString("Use Markdown formatting.")
	} else {
		fmt.Fprintf(&b, "Summarize the following content for a %s student in %s.\n", input.Level, input.Language)
		b.WriteString("Focus on key concepts, definitions, and actionable takeaways. Use Markdown.")
	}

	if strings.TrimSpace(input.Content) != "" {
		b.WriteString("\n\nContent:\n")
		b.WriteString(input.Content)
	}

	return b.String()
}

func titleFor(input Input) string {
	if input.Mode == ModeExamReview {
		return "Exam Review"
	}
	if input.Attachment != nil && input.Attachment.Name != "" {
		return "File: " + input.Attachment.Name
	}
	return "Summary"
}
