package usecase

import (
	"context"
	"time"

	itemdomain "smartlists-backend/internal/item/domain"
)

// RouteResult is the outcome of routing one free-text input. Message is
// set instead of Created when nothing was persisted; that is a normal
// outcome, not an error.
type RouteResult struct {
	Created []*itemdomain.ListItem
	Message string
}

// CaptureUsecase is the input router: it turns one free-text input into
// zero or more classified items assigned to the user's lists.
type CaptureUsecase interface {
	// Route classifies the input against the user's current lists and
	// persists the accepted items. The reference time now is captured by
	// the caller when the request arrives; timestamps extracted from the
	// input are resolved relative to it. An error is returned only when
	// the whole call failed (AI unreachable or an unusable response);
	// individual bad candidates are dropped silently.
	Route(ctx context.Context, userID, input string, now time.Time) (*RouteResult, error)
}
