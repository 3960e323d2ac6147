package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amink/durus/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo, log)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from DURUS_* environment variables,
// falling back to probing standard API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo, log)
}

// NewSpeechProviderFromEnv builds a SpeechProvider. Speech is served by
// Gemini regardless of the text provider selection; it needs a Gemini key.
func NewSpeechProviderFromEnv(ctx context.Context) (SpeechProvider, error) {
	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey == "" {
		if k, ok := DiscoverConfig(); ok && k.Gemini.APIKey != "" {
			cfg.Gemini = mergeSpeechDefaults(cfg.Gemini, k.Gemini)
		} else {
			return nil, fmt.Errorf("DURUS_GEMINI_API_KEY is required for speech")
		}
	}
	return NewGeminiSpeech(ctx, cfg.Gemini)
}

func mergeSpeechDefaults(base, discovered GeminiConfig) GeminiConfig {
	base.APIKey = discovered.APIKey
	if base.SpeechModel == "" {
		base.SpeechModel = discovered.SpeechModel
	}
	if base.Voice == "" {
		base.Voice = discovered.Voice
	}
	return base
}
