package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	itemdomain "smartlists-backend/internal/item/domain"
)

// candidate is one untrusted item as returned by the AI
type candidate struct {
	Content     string  `json:"content"`
	Notes       *string `json:"notes"`
	ListID      *string `json:"listId"`
	Priority    *string `json:"priority"`
	Type        string  `json:"type"`
	Completed   bool    `json:"completed"`
	Timestamp   *string `json:"timestamp"`
	DisplayMode string  `json:"display_mode"`
}

// candidateFields are the keys every candidate must carry. Nullable fields
// must be explicit nulls; an omitted key rejects the candidate instead of
// zero-valuing it, because a defaulted classification would corrupt the
// timestamp and display logic downstream.
var candidateFields = []string{"content", "listId", "priority", "completed", "type", "timestamp", "notes", "display_mode"}

// decodeCandidate parses one raw candidate, verifying field presence
func decodeCandidate(raw json.RawMessage) (*candidate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("candidate is not an object: %w", err)
	}
	for _, key := range candidateFields {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("candidate is missing field %q", key)
		}
	}

	var c candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Content == "" {
		return nil, fmt.Errorf("candidate has empty content")
	}
	return &c, nil
}

// toItem validates a decoded candidate against the supplied lists and
// builds the item to persist. It returns nil when the candidate must be
// dropped: unknown type or priority, no list assignment, or a listId that
// is not among the user's lists. The only value synthesized locally is the
// display mode, which is cosmetic and recoverable from the item type.
func (c *candidate) toItem(listNames map[string]string, now time.Time) *itemdomain.ListItem {
	itemType := itemdomain.ItemType(c.Type)
	if !itemType.IsValid() {
		return nil
	}

	var priority *itemdomain.Priority
	if c.Priority != nil {
		p := itemdomain.Priority(*c.Priority)
		if !p.IsValid() {
			return nil
		}
		priority = &p
	}

	// listId null means no list matched; the candidate is skipped without
	// being an error.
	if c.ListID == nil {
		return nil
	}
	listName, ok := listNames[*c.ListID]
	if !ok {
		return nil
	}

	displayMode := itemdomain.DisplayMode(c.DisplayMode)
	if !displayMode.IsValid() {
		displayMode = itemdomain.DefaultDisplayMode(itemType)
	}

	// Routing never creates a pre-completed task.
	completed := c.Completed
	if itemType == itemdomain.ItemTypeTask {
		completed = false
	}

	createdAt := now
	if c.Timestamp != nil {
		if ts, err := time.Parse(time.RFC3339, *c.Timestamp); err == nil {
			createdAt = ts
		}
	}

	return &itemdomain.ListItem{
		ListID:      *c.ListID,
		Content:     c.Content,
		Notes:       c.Notes,
		Priority:    priority,
		Completed:   completed,
		Type:        itemType,
		DisplayMode: displayMode,
		CreatedAt:   createdAt,
		ListName:    listName,
	}
}
