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

// GeminiService implements OracleService using the Gemini generateContent
// API with a JSON response schema.
type GeminiService struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiService(apiKey, model string, timeout time.Duration) *GeminiService {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// CategorizeItems implements OracleService
func (g *GeminiService) CategorizeItems(ctx context.Context, input string, now time.Time, lists []ListRule) ([]json.RawMessage, error) {
	text, err := g.generate(ctx, categorizeSystemPrompt, categorizePrompt(input, now, lists), geminiCategorizedItemsSchema())
	if err != nil {
		return nil, err
	}

	var result struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("gemini response is not a categorized items object: %w", err)
	}
	if result.Items == nil {
		return nil, fmt.Errorf("gemini response is missing the items array")
	}
	return result.Items, nil
}

// AnalyzePurpose implements OracleService
func (g *GeminiService) AnalyzePurpose(ctx context.Context, purpose string) (*PurposeAnalysis, error) {
	text, err := g.generate(ctx, purposeSystemPrompt, purposePrompt(purpose), geminiListAnalysisSchema())
	if err != nil {
		return nil, err
	}

	var analysis PurposeAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("gemini response is not a list analysis object: %w", err)
	}
	if analysis.Description == "" || analysis.Rules == "" {
		return nil, fmt.Errorf("gemini list analysis is incomplete")
	}
	return &analysis, nil
}

func (g *GeminiService) generate(ctx context.Context, system, user string, schema map[string]interface{}) (string, error) {
	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", g.model, g.apiKey)

	payload := map[string]interface{}{
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]string{{"text": system}},
		},
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": user}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   schema,
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

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Gemini uses its own schema dialect (upper-case types, nullable flag).
func geminiCategorizedItemsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"items": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"content":      map[string]interface{}{"type": "STRING"},
						"listId":       map[string]interface{}{"type": "STRING", "nullable": true},
						"priority":     map[string]interface{}{"type": "STRING", "nullable": true},
						"completed":    map[string]interface{}{"type": "BOOLEAN"},
						"type":         map[string]interface{}{"type": "STRING", "enum": []string{"task", "log"}},
						"timestamp":    map[string]interface{}{"type": "STRING", "nullable": true},
						"notes":        map[string]interface{}{"type": "STRING", "nullable": true},
						"display_mode": map[string]interface{}{"type": "STRING", "enum": []string{"todo-strike", "todo-no-strike", "bullet", "log-clock"}},
					},
					"required": []string{"content", "listId", "priority", "completed", "type", "timestamp", "notes", "display_mode"},
				},
			},
		},
		"required": []string{"items"},
	}
}

func geminiListAnalysisSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"rules":       map[string]interface{}{"type": "STRING"},
			"description": map[string]interface{}{"type": "STRING"},
		},
		"required": []string{"rules", "description"},
	}
}
