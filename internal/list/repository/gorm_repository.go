package repository

import (
	"errors"
	"time"

	"smartlists-backend/internal/list/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormListRepository implements ListRepository using GORM
type gormListRepository struct {
	db *gorm.DB
}

// NewGormListRepository creates a new GORM-based ListRepository
func NewGormListRepository(db *gorm.DB) ListRepository {
	return &gormListRepository{db: db}
}

func (r *gormListRepository) Create(list *domain.List) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	list.CreatedAt = time.Now()
	list.UpdatedAt = time.Now()
	return r.db.Create(list).Error
}

func (r *gormListRepository) FindByID(id string) (*domain.List, error) {
	var list domain.List
	err := r.db.Where("id = ?", id).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *gormListRepository) FindByUserID(userID string) ([]*domain.List, error) {
	var lists []*domain.List
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&lists).Error
	return lists, err
}

func (r *gormListRepository) Update(list *domain.List) error {
	list.UpdatedAt = time.Now()
	return r.db.Save(list).Error
}

func (r *gormListRepository) Delete(id string) error {
	return r.db.Delete(&domain.List{}, "id = ?", id).Error
}
