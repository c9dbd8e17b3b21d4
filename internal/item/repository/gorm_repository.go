package repository

import (
	"errors"
	"time"

	"smartlists-backend/internal/item/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormItemRepository implements ItemRepository using GORM
type gormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM-based ItemRepository
func NewGormItemRepository(db *gorm.DB) ItemRepository {
	return &gormItemRepository{db: db}
}

func (r *gormItemRepository) Create(item *domain.ListItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *gormItemRepository) FindByID(id string) (*domain.ListItem, error) {
	var item domain.ListItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormItemRepository) FindByListID(listID string) ([]*domain.ListItem, error) {
	var items []*domain.ListItem
	err := r.db.Where("list_id = ?", listID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *gormItemRepository) Update(item *domain.ListItem) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *gormItemRepository) Delete(listID, itemID string) error {
	return r.db.Where("id = ? AND list_id = ?", itemID, listID).Delete(&domain.ListItem{}).Error
}

func (r *gormItemRepository) DeleteByListID(listID string) error {
	return r.db.Where("list_id = ?", listID).Delete(&domain.ListItem{}).Error
}
