// Package search answers quick questions with web-grounded generation,
// falling back to plain generation when grounding is unavailable.
package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
)

// Result is a search answer with optional source citations.
type Result struct {
	Text    string
	Sources []llm.Source

	// Grounded reports whether the answer came from the web-grounded
	// attempt. False means the plain fallback served it.
	Grounded bool
}

// Service runs quick searches through the gateway.
type Service struct {
	provider llm.Provider
	log      *zap.Logger
}

// NewService creates a search service.
func NewService(provider llm.Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, log: log}
}

// Query answers the given query. It first attempts a web-grounded
// generation; if that fails for any reason it retries as a plain
// generation without sources rather than failing the search.
func (s *Service) Query(ctx context.Context, query string, lang i18n.Language) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}

	ctx = llm.WithPurpose(ctx, "search")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: groundedPrompt(query, lang)},
		},
		EnableSearch: true,
		MaxTokens:    2048,
	})
	if err == nil {
		return &Result{Text: resp.Text(), Sources: resp.Sources, Grounded: true}, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	s.log.Warn("grounded search failed, falling back to plain generation", zap.Error(err))

	resp, err = s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: plainPrompt(query, lang)},
		},
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return &Result{Text: resp.Text()}, nil
}

func groundedPrompt(query string, lang i18n.Language) string {
	return fmt.Sprintf("Provide a concise explanation and summary for: %q in %s. Use grounded information if possible.", query, lang)
}

func plainPrompt(query string, lang i18n.Language) string {
	return fmt.Sprintf("Provide a concise explanation and summary for: %q in %s.", query, lang)
}
