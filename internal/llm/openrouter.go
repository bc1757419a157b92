package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider routes requests through OpenRouter. The API is
// OpenAI-compatible, so it delegates to OpenAIProvider with the base URL
// and default model swapped.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider pointed at the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	inner, err := NewOpenAIProvider(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
