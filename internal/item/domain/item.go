package domain

import "time"

// Priority represents item priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the allowed priority levels
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ItemType distinguishes a prospective task from a retrospective log entry
type ItemType string

const (
	ItemTypeTask ItemType = "task"
	ItemTypeLog  ItemType = "log"
)

func (t ItemType) IsValid() bool {
	return t == ItemTypeTask || t == ItemTypeLog
}

// DisplayMode controls how an item is rendered by the clients
type DisplayMode string

const (
	DisplayModeTodoStrike   DisplayMode = "todo-strike"
	DisplayModeTodoNoStrike DisplayMode = "todo-no-strike"
	DisplayModeBullet       DisplayMode = "bullet"
	DisplayModeLogClock     DisplayMode = "log-clock"
)

func (d DisplayMode) IsValid() bool {
	switch d {
	case DisplayModeTodoStrike, DisplayModeTodoNoStrike, DisplayModeBullet, DisplayModeLogClock:
		return true
	}
	return false
}

// DefaultDisplayMode is the mode used when none was detected: log entries
// render with a clock, everything else as a strikethrough todo.
func DefaultDisplayMode(t ItemType) DisplayMode {
	if t == ItemTypeLog {
		return DisplayModeLogClock
	}
	return DisplayModeTodoStrike
}

// ListItem is a single entry in a list, created either manually or by
// routing free-text input. An item belongs to exactly one list.
type ListItem struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	ListID      string      `json:"list_id" gorm:"index;not null"`
	Content     string      `json:"content" gorm:"not null"`
	Notes       *string     `json:"notes,omitempty"`
	Priority    *Priority   `json:"priority,omitempty"`
	Completed   bool        `json:"completed"`
	Type        ItemType    `json:"type" gorm:"default:task"`
	DisplayMode DisplayMode `json:"display_mode" gorm:"default:todo-strike"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// ListName is filled in for routing summaries; it is not a column.
	ListName string `json:"list_name,omitempty" gorm:"-"`
}
