package repository

import "smartlists-backend/internal/list/domain"

// ListRepository defines the interface for list data access
type ListRepository interface {
	// Create creates a new list
	Create(list *domain.List) error

	// FindByID finds a list by its ID
	FindByID(id string) (*domain.List, error)

	// FindByUserID returns all lists owned by a user, newest first.
	// Callers always read fresh: rules text can change between calls and
	// is never cached.
	FindByUserID(userID string) ([]*domain.List, error)

	// Update updates an existing list
	Update(list *domain.List) error

	// Delete deletes a list by ID
	Delete(id string) error
}
