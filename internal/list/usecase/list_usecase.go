package usecase

import (
	"context"
	"errors"
	"log"

	"smartlists-backend/internal/list/domain"
	listrepo "smartlists-backend/internal/list/repository"
	itemrepo "smartlists-backend/internal/item/repository"
	"smartlists-backend/pkg/ai"
)

// purposeFallbackDescription is returned when the AI could not analyze a
// purpose; the rules fall back to the user's original text.
const purposeFallbackDescription = "Could not analyze purpose"

// listUsecase implements ListUsecase interface
type listUsecase struct {
	listRepo listrepo.ListRepository
	itemRepo itemrepo.ItemRepository
	oracle   ai.OracleService
}

// NewListUsecase creates a new instance of listUsecase
func NewListUsecase(listRepo listrepo.ListRepository, itemRepo itemrepo.ItemRepository) ListUsecase {
	return &listUsecase{
		listRepo: listRepo,
		itemRepo: itemRepo,
	}
}

func (u *listUsecase) SetOracleService(svc ai.OracleService) {
	u.oracle = svc
}

func (u *listUsecase) CreateList(userID, name, description, rules string) (*domain.List, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}

	list := &domain.List{
		UserID:      userID,
		Name:        name,
		Description: description,
		Rules:       rules,
	}
	if err := u.listRepo.Create(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *listUsecase) GetUserLists(userID string) ([]*domain.List, error) {
	return u.listRepo.FindByUserID(userID)
}

func (u *listUsecase) GetListByID(userID, listID string) (*domain.List, error) {
	list, err := u.listRepo.FindByID(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, errors.New("list not found")
	}
	if list.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return list, nil
}

func (u *listUsecase) UpdateList(userID, listID string, updates ListUpdateRequest) (*domain.List, error) {
	list, err := u.GetListByID(userID, listID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil && *updates.Name != "" {
		list.Name = *updates.Name
	}
	if updates.Description != nil {
		list.Description = *updates.Description
	}
	if updates.Rules != nil {
		list.Rules = *updates.Rules
	}

	if err := u.listRepo.Update(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *listUsecase) DeleteList(userID, listID string) error {
	list, err := u.GetListByID(userID, listID)
	if err != nil {
		return err
	}
	if err := u.itemRepo.DeleteByListID(list.ID); err != nil {
		return err
	}
	return u.listRepo.Delete(list.ID)
}

func (u *listUsecase) AnalyzePurpose(ctx context.Context, purpose string) *ai.PurposeAnalysis {
	if u.oracle != nil {
		analysis, err := u.oracle.AnalyzePurpose(ctx, purpose)
		if err == nil && analysis != nil && analysis.Description != "" && analysis.Rules != "" {
			return analysis
		}
		if err != nil {
			log.Printf("[List] Purpose analysis failed: %v", err)
		}
	}

	// Degraded result: the original text still works as a rule, so list
	// creation is never blocked by the AI.
	return &ai.PurposeAnalysis{
		Description: purposeFallbackDescription,
		Rules:       purpose,
	}
}
