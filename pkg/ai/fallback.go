package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"strings"
	"time"
)

// FallbackService routes oracle calls to a remote provider first and falls
// back to a local Ollama server when the remote one is unreachable or out
// of quota. Each call still runs as a single request with one timeout; the
// fallback is a second independent attempt, never a partial retry.
type FallbackService struct {
	remote OracleService
	ollama *OllamaService
}

func NewFallbackService(remote OracleService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		remote: remote,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(net.Error); ok {
		return true
	}
	errStr := strings.ToLower(err.Error())
	for _, indicator := range []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	} {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, indicator := range []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	} {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// CategorizeItems implements OracleService
func (f *FallbackService) CategorizeItems(ctx context.Context, input string, now time.Time, lists []ListRule) ([]json.RawMessage, error) {
	if f.remote != nil {
		items, err := f.remote.CategorizeItems(ctx, input, now, lists)
		if err == nil {
			return items, nil
		}
		if f.ollama == nil || !(isConnectionError(err) || isQuotaError(err)) {
			return nil, err
		}
		log.Printf("[AI] remote categorization failed: %v, falling back to Ollama", err)
	}

	if f.ollama != nil {
		return f.ollama.CategorizeItems(ctx, input, now, lists)
	}
	return nil, fmt.Errorf("no AI provider available for categorization")
}

// AnalyzePurpose implements OracleService
func (f *FallbackService) AnalyzePurpose(ctx context.Context, purpose string) (*PurposeAnalysis, error) {
	if f.remote != nil {
		analysis, err := f.remote.AnalyzePurpose(ctx, purpose)
		if err == nil {
			return analysis, nil
		}
		if f.ollama == nil || !(isConnectionError(err) || isQuotaError(err)) {
			return nil, err
		}
		log.Printf("[AI] remote purpose analysis failed: %v, falling back to Ollama", err)
	}

	if f.ollama != nil {
		return f.ollama.AnalyzePurpose(ctx, purpose)
	}
	return nil, fmt.Errorf("no AI provider available for purpose analysis")
}
