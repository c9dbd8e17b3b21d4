package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaService implements OracleService using a local Ollama server
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
	client     *http.Client
}

// NewOllamaService creates a new Ollama service with static configuration
func NewOllamaService(baseURL, model string, timeout time.Duration) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		getBaseURL: func() string { return baseURL },
		getModel:   func() string { return model },
		client:     &http.Client{Timeout: timeout},
	}
}

// NewOllamaServiceWithGetters creates a new Ollama service whose base URL
// and model can change at runtime via the settings API
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string, timeout time.Duration) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
		client:     &http.Client{Timeout: timeout},
	}
}

// CategorizeItems implements OracleService
func (o *OllamaService) CategorizeItems(ctx context.Context, input string, now time.Time, lists []ListRule) ([]json.RawMessage, error) {
	prompt := categorizePrompt(input, now, lists) + `

Every item object MUST contain all of these keys: content, listId, priority, completed, type, timestamp, notes, display_mode. Use explicit null for empty values, never omit a key.`

	response, err := o.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("ollama response is not a categorized items object: %w", err)
	}
	if result.Items == nil {
		return nil, fmt.Errorf("ollama response is missing the items array")
	}
	return result.Items, nil
}

// AnalyzePurpose implements OracleService
func (o *OllamaService) AnalyzePurpose(ctx context.Context, purpose string) (*PurposeAnalysis, error) {
	response, err := o.generate(ctx, purposePrompt(purpose))
	if err != nil {
		return nil, err
	}

	var analysis PurposeAnalysis
	if err := json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("ollama response is not a list analysis object: %w", err)
	}
	if analysis.Description == "" || analysis.Rules == "" {
		return nil, fmt.Errorf("ollama list analysis is incomplete")
	}
	return &analysis, nil
}

// generate performs one non-streaming completion in JSON mode
func (o *OllamaService) generate(ctx context.Context, prompt string) (string, error) {
	url := o.getBaseURL() + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.getModel(),
		"prompt": prompt,
		"stream": false,
		"format": "json",
		"options": map[string]interface{}{
			"temperature": 0.2,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Response, nil
}
