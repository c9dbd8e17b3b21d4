package usecase

import (
	"context"

	"smartlists-backend/internal/list/domain"
	"smartlists-backend/pkg/ai"
)

// ListUsecase defines the interface for list business logic
type ListUsecase interface {
	// CreateList creates a new list for the user
	CreateList(userID, name, description, rules string) (*domain.List, error)

	// GetUserLists returns all lists owned by the user
	GetUserLists(userID string) ([]*domain.List, error)

	// GetListByID retrieves a list by ID (with ownership check)
	GetListByID(userID, listID string) (*domain.List, error)

	// UpdateList applies a partial update to name, description or rules
	UpdateList(userID, listID string, updates ListUpdateRequest) (*domain.List, error)

	// DeleteList deletes a list and its items
	DeleteList(userID, listID string) error

	// AnalyzePurpose derives a description and a rules string from a
	// free-text purpose. It never fails: when the AI call errors out the
	// user's own text is returned as the rules so list creation can
	// proceed.
	AnalyzePurpose(ctx context.Context, purpose string) *ai.PurposeAnalysis

	// SetOracleService sets the AI service used for purpose analysis
	SetOracleService(svc ai.OracleService)
}

// ListUpdateRequest represents the fields that can be updated
type ListUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Rules       *string `json:"rules,omitempty"`
}
