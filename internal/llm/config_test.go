package llm

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q, want gemini-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.Voice != "Kore" {
		t.Errorf("default voice = %q, want Kore", cfg.Gemini.Voice)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default max attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("DURUS_LLM_PROVIDER", "anthropic")
	t.Setenv("DURUS_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("DURUS_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("DURUS_GEMINI_VOICE", "Puck")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("anthropic key = %q, want sk-test", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("anthropic model = %q, want claude-sonnet", cfg.Anthropic.Model)
	}
	if cfg.Gemini.Voice != "Puck" {
		t.Errorf("voice = %q, want Puck", cfg.Gemini.Voice)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini (priority)", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("gemini key = %q, want g-key", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini missing key", Config{Provider: "gemini"}, true},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"anthropic missing key", Config{Provider: "anthropic"}, true},
		{"openrouter missing key", Config{Provider: "openrouter"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
