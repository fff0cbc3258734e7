package llm

import "testing"

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("STUDYMATE_LLM_PROVIDER", "anthropic")
	t.Setenv("STUDYMATE_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("STUDYMATE_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "anthropic")
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want %q", cfg.Anthropic.APIKey, "sk-test")
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("Model = %q, want %q", cfg.Anthropic.Model, "claude-sonnet")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "gemini")
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, "gemini-flash")
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini missing key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "bard"}, true},
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

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("ANTHROPIC_API_KEY", "an-key")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("DiscoverConfig() ok = false, want true")
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q (OpenAI outranks Anthropic)", cfg.Provider, "openai")
	}
	if cfg.OpenAI.APIKey != "oa-key" {
		t.Errorf("APIKey = %q, want %q", cfg.OpenAI.APIKey, "oa-key")
	}
}

func TestDiscoverConfigNoneFound(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig() ok = true, want false")
	}
}
