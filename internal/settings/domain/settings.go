package domain

import "time"

// UserSettings stores an opaque settings document per user. The backend
// never interprets it; clients own the shape.
type UserSettings struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Settings  string    `json:"settings" gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt time.Time `json:"updated_at"`
}
