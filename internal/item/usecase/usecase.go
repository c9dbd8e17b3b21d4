package usecase

import "smartlists-backend/internal/item/domain"

// ItemUsecase defines the interface for item business logic. Every
// operation verifies the caller owns the parent list.
type ItemUsecase interface {
	// GetListItems returns all items of a list
	GetListItems(userID, listID string) ([]*domain.ListItem, error)

	// AddItem adds an item to a list manually
	AddItem(userID, listID, content string, notes *string, priority *string) (*domain.ListItem, error)

	// UpdateItem applies a partial update to an item
	UpdateItem(userID, listID, itemID string, updates ItemUpdateRequest) (*domain.ListItem, error)

	// DeleteItem deletes one item of a list
	DeleteItem(userID, listID, itemID string) error

	// ClearList deletes every item of a list
	ClearList(userID, listID string) error
}

// ItemUpdateRequest represents the fields that can be updated
type ItemUpdateRequest struct {
	Content     *string `json:"content,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DisplayMode *string `json:"display_mode,omitempty"`
}
