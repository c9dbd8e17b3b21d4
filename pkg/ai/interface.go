package ai

import (
	"context"
	"encoding/json"
	"time"
)

// ListRule is the per-call snapshot of a list handed to the AI provider.
// Rules is opaque free text written by the user; providers pass it through
// verbatim and never pre-parse it.
type ListRule struct {
	ID    string
	Name  string
	Rules string
}

// PurposeAnalysis is the result of analyzing a list purpose (shared type)
type PurposeAnalysis struct {
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

// OracleService is the interface for AI categorization and purpose analysis.
// Implement this interface to add new AI providers (OpenAI, Gemini, Ollama, etc.)
type OracleService interface {
	// CategorizeItems breaks the user input into individual items, classifies
	// each as a task or a log entry and assigns it to one of the given lists.
	// One provider call per input. Items are returned as raw JSON so the
	// caller can validate each candidate independently; an error means the
	// whole response was unusable (transport failure or a response that does
	// not match the requested shape).
	CategorizeItems(ctx context.Context, input string, now time.Time, lists []ListRule) ([]json.RawMessage, error)

	// AnalyzePurpose derives a reusable rules string and a description from a
	// free-text list purpose.
	AnalyzePurpose(ctx context.Context, purpose string) (*PurposeAnalysis, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
