package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatCompletion wraps content into the chat completions response shape
func chatCompletion(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
}

func newOpenAITestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenAIService) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewOpenAIService("test-key", "gpt-4o-mini", srv.URL, 5*time.Second)
	return srv, svc
}

func TestOpenAICategorizeItems(t *testing.T) {
	var gotRequest map[string]interface{}
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		json.NewEncoder(w).Encode(chatCompletion(`{"items":[{"content":"Milk"},{"content":"Eggs"}]}`))
	})

	items, err := svc.CategorizeItems(context.Background(), "milk, eggs", time.Now(), []ListRule{
		{ID: "list-1", Name: "Groceries", Rules: "food items"},
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Structured output must be requested with a strict schema.
	format, ok := gotRequest["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
	schema, ok := format["json_schema"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "categorized_items", schema["name"])
	assert.Equal(t, true, schema["strict"])
}

func TestOpenAICategorizeItems_MissingItemsArray(t *testing.T) {
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletion(`{"results":[]}`))
	})

	_, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), []ListRule{{ID: "list-1", Name: "Groceries"}})
	assert.Error(t, err)
}

func TestOpenAICategorizeItems_MalformedContent(t *testing.T) {
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletion(`not json at all`))
	})

	_, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), []ListRule{{ID: "list-1", Name: "Groceries"}})
	assert.Error(t, err)
}

func TestOpenAICategorizeItems_APIError(t *testing.T) {
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), []ListRule{{ID: "list-1", Name: "Groceries"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenAIAnalyzePurpose(t *testing.T) {
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletion(`{"description":"Weekly groceries","rules":"food, drinks"}`))
	})

	analysis, err := svc.AnalyzePurpose(context.Background(), "track my grocery shopping")
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", analysis.Description)
	assert.Equal(t, "food, drinks", analysis.Rules)
}

func TestOpenAIAnalyzePurpose_IncompleteResult(t *testing.T) {
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletion(`{"description":"","rules":""}`))
	})

	_, err := svc.AnalyzePurpose(context.Background(), "anything")
	assert.Error(t, err)
}

func TestOpenAIComplete_NoChoices(t *testing.T) {
	_, svc := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	_, err := svc.AnalyzePurpose(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no completion")
}
