package repository

import "smartlists-backend/internal/item/domain"

// ItemRepository defines the interface for list item data access
type ItemRepository interface {
	// Create inserts a new item. A pre-set CreatedAt is preserved so
	// routed log entries keep their extracted timestamp.
	Create(item *domain.ListItem) error

	// FindByID finds an item by its ID
	FindByID(id string) (*domain.ListItem, error)

	// FindByListID returns all items of a list, newest first
	FindByListID(listID string) ([]*domain.ListItem, error)

	// Update updates an existing item
	Update(item *domain.ListItem) error

	// Delete deletes one item of a list
	Delete(listID, itemID string) error

	// DeleteByListID deletes every item of a list
	DeleteByListID(listID string) error
}
