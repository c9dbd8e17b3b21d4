package domain

import "time"

// List is a user-owned smart list. Rules is free text describing what
// belongs in the list; it is the only input used when routing items here,
// so it is stored verbatim and never parsed locally.
type List struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Rules       string    `json:"rules,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
