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

// OpenAIService implements OracleService using the OpenAI chat completions
// API with strict structured output.
type OpenAIService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIService creates a new OpenAI service. The timeout bounds every
// request; a timed-out call fails as a whole.
func NewOpenAIService(apiKey, model, baseURL string, timeout time.Duration) *OpenAIService {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CategorizeItems implements OracleService
func (o *OpenAIService) CategorizeItems(ctx context.Context, input string, now time.Time, lists []ListRule) ([]json.RawMessage, error) {
	content, err := o.complete(ctx, categorizeSystemPrompt, categorizePrompt(input, now, lists), "categorized_items", categorizedItemsSchema())
	if err != nil {
		return nil, err
	}

	var result struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("openai response is not a categorized items object: %w", err)
	}
	if result.Items == nil {
		return nil, fmt.Errorf("openai response is missing the items array")
	}
	return result.Items, nil
}

// AnalyzePurpose implements OracleService
func (o *OpenAIService) AnalyzePurpose(ctx context.Context, purpose string) (*PurposeAnalysis, error) {
	content, err := o.complete(ctx, purposeSystemPrompt, purposePrompt(purpose), "list_analysis", listAnalysisSchema())
	if err != nil {
		return nil, err
	}

	var analysis PurposeAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("openai response is not a list analysis object: %w", err)
	}
	if analysis.Description == "" || analysis.Rules == "" {
		return nil, fmt.Errorf("openai list analysis is incomplete")
	}
	return &analysis, nil
}

// complete performs one chat completion with a strict JSON schema response
// format and returns the message content.
func (o *OpenAIService) complete(ctx context.Context, system, user, schemaName string, schema map[string]interface{}) (string, error) {
	payload := map[string]interface{}{
		"model": o.model,
		"messages": []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		"response_format": map[string]interface{}{
			"type": "json_schema",
			"json_schema": map[string]interface{}{
				"name":   schemaName,
				"strict": true,
				"schema": schema,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no completion returned")
	}
	return result.Choices[0].Message.Content, nil
}
