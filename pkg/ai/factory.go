package ai

import (
	"fmt"
	"time"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "gemini", "ollama" or "auto"
	Timeout  time.Duration

	// OpenAI config
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Ollama config, resolved at call time so the settings API can change
	// it without a restart
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewOracleService creates an OracleService based on the config.
// This is the factory function - switch AI provider by changing
// config.Provider. In "auto" mode a remote provider is preferred and the
// local Ollama server is kept as fallback.
func NewOracleService(cfg Config) (OracleService, error) {
	ollama := NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel, cfg.Timeout)

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Timeout), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout), nil

	case ProviderOllama:
		return ollama, nil

	default:
		if cfg.OpenAIAPIKey != "" {
			return NewFallbackService(NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Timeout), ollama), nil
		}
		if cfg.GeminiAPIKey != "" {
			return NewFallbackService(NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout), ollama), nil
		}
		return ollama, nil
	}
}
