package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	itemdomain "smartlists-backend/internal/item/domain"
	itemrepo "smartlists-backend/internal/item/repository"
	listrepo "smartlists-backend/internal/list/repository"
	"smartlists-backend/pkg/ai"
)

const (
	noListsMessage   = "No lists found. Please create a list first."
	noMatchesMessage = "No items matched your lists."
)

// captureUsecase implements CaptureUsecase interface
type captureUsecase struct {
	listRepo listrepo.ListRepository
	itemRepo itemrepo.ItemRepository
	oracle   ai.OracleService
}

// NewCaptureUsecase creates a new instance of captureUsecase
func NewCaptureUsecase(listRepo listrepo.ListRepository, itemRepo itemrepo.ItemRepository, oracle ai.OracleService) CaptureUsecase {
	return &captureUsecase{
		listRepo: listRepo,
		itemRepo: itemRepo,
		oracle:   oracle,
	}
}

func (u *captureUsecase) Route(ctx context.Context, userID, input string, now time.Time) (*RouteResult, error) {
	if input == "" {
		return nil, errors.New("input is required")
	}
	if u.oracle == nil {
		return nil, errors.New("AI service not configured")
	}

	// Lists are read fresh on every call; rules text may have changed
	// since the last input.
	lists, err := u.listRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	// Hard guard: routing into zero targets is undefined, so the AI is
	// never asked.
	if len(lists) == 0 {
		return &RouteResult{Message: noListsMessage}, nil
	}

	rules := make([]ai.ListRule, 0, len(lists))
	listNames := make(map[string]string, len(lists))
	for _, l := range lists {
		rules = append(rules, ai.ListRule{ID: l.ID, Name: l.Name, Rules: l.Rules})
		listNames[l.ID] = l.Name
	}

	// One AI call per input, never one per list.
	rawItems, err := u.oracle.CategorizeItems(ctx, input, now, rules)
	if err != nil {
		return nil, err
	}

	var created []*itemdomain.ListItem
	for _, raw := range rawItems {
		c, err := decodeCandidate(raw)
		if err != nil {
			log.Printf("[Capture] Dropping candidate: %v", err)
			continue
		}

		item := c.toItem(listNames, now)
		if item == nil {
			continue
		}

		// Items are persisted independently; a failed insert drops this
		// item only.
		if err := u.itemRepo.Create(item); err != nil {
			log.Printf("[Capture] Failed to create item %q: %v", item.Content, err)
			continue
		}
		created = append(created, item)
	}

	if len(created) == 0 {
		return &RouteResult{Message: noMatchesMessage}, nil
	}
	return &RouteResult{Created: created}, nil
}
