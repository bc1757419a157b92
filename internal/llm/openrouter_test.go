package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantErr: false,
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:    "custom base URL",
			cfg:     OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b", BaseURL: "https://custom.openrouter.example/v1"},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewOpenRouterProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p == nil {
				t.Fatal("expected non-nil provider")
			}
		})
	}
}

func TestOpenRouterModelPassThrough(t *testing.T) {
	// OpenRouter model IDs are namespaced, so no friendly-name mapping applies.
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "anthropic/claude-3-haiku",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q, want %q", p.ModelID(), "anthropic/claude-3-haiku")
	}
}
