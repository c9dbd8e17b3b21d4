package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRemote struct {
	err   error
	calls int
}

func (s *stubRemote) CategorizeItems(ctx context.Context, input string, now time.Time, lists []ListRule) ([]json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []json.RawMessage{json.RawMessage(`{"content":"Milk"}`)}, nil
}

func (s *stubRemote) AnalyzePurpose(ctx context.Context, purpose string) (*PurposeAnalysis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &PurposeAnalysis{Description: "remote", Rules: "remote rules"}, nil
}

// newTestOllama backs an OllamaService with a local test server that always
// answers with the given JSON mode response.
func newTestOllama(t *testing.T, response string) (*OllamaService, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]interface{}{"response": response, "done": true})
	}))
	t.Cleanup(srv.Close)
	return NewOllamaService(srv.URL, "llama3", 5*time.Second), &calls
}

func TestFallback_RemoteSuccess(t *testing.T) {
	remote := &stubRemote{}
	ollama, ollamaCalls := newTestOllama(t, `{"items":[]}`)
	svc := NewFallbackService(remote, ollama)

	items, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, remote.calls)
	assert.Zero(t, *ollamaCalls)
}

func TestFallback_ConnectionErrorFallsBack(t *testing.T) {
	remote := &stubRemote{err: errors.New("dial tcp 10.0.0.1:443: connection refused")}
	ollama, ollamaCalls := newTestOllama(t, `{"items":[{"content":"Milk"}]}`)
	svc := NewFallbackService(remote, ollama)

	items, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, *ollamaCalls)
}

func TestFallback_QuotaErrorFallsBack(t *testing.T) {
	remote := &stubRemote{err: errors.New("openai API error (429): rate limited")}
	ollama, ollamaCalls := newTestOllama(t, `{"description":"local","rules":"local rules"}`)
	svc := NewFallbackService(remote, ollama)

	analysis, err := svc.AnalyzePurpose(context.Background(), "track groceries")
	require.NoError(t, err)
	assert.Equal(t, "local", analysis.Description)
	assert.Equal(t, 1, *ollamaCalls)
}

func TestFallback_OtherErrorsDoNotFallBack(t *testing.T) {
	remote := &stubRemote{err: errors.New("openai API error (400): bad schema")}
	ollama, ollamaCalls := newTestOllama(t, `{"items":[]}`)
	svc := NewFallbackService(remote, ollama)

	_, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), nil)
	assert.Error(t, err)
	assert.Zero(t, *ollamaCalls)
}

func TestFallback_NoProviders(t *testing.T) {
	svc := NewFallbackService(nil, nil)
	_, err := svc.CategorizeItems(context.Background(), "milk", time.Now(), nil)
	assert.Error(t, err)
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(errors.New("dial tcp: connection refused")))
	assert.True(t, isConnectionError(errors.New("request failed: unexpected EOF")))
	assert.False(t, isConnectionError(errors.New("invalid response shape")))
	assert.False(t, isConnectionError(nil))
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, isQuotaError(errors.New("too many requests")))
	assert.True(t, isQuotaError(errors.New("quota exceeded for project")))
	assert.False(t, isQuotaError(errors.New("bad request")))
	assert.False(t, isQuotaError(nil))
}
