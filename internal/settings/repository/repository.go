package repository

import (
	"errors"
	"time"

	"smartlists-backend/internal/settings/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository defines the interface for user settings access
type SettingsRepository interface {
	// Find returns the settings document for a user, or nil when none
	// was saved yet
	Find(userID string) (*domain.UserSettings, error)

	// Save upserts the settings document for a user
	Save(settings *domain.UserSettings) error
}

// gormSettingsRepository implements SettingsRepository using GORM
type gormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM-based SettingsRepository
func NewGormSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) Find(userID string) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *gormSettingsRepository) Save(settings *domain.UserSettings) error {
	settings.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
	}).Create(settings).Error
}
