package usecase

import (
	"errors"

	"smartlists-backend/internal/item/domain"
	itemrepo "smartlists-backend/internal/item/repository"
	listrepo "smartlists-backend/internal/list/repository"
)

// itemUsecase implements ItemUsecase interface
type itemUsecase struct {
	itemRepo itemrepo.ItemRepository
	listRepo listrepo.ListRepository
}

// NewItemUsecase creates a new instance of itemUsecase
func NewItemUsecase(itemRepo itemrepo.ItemRepository, listRepo listrepo.ListRepository) ItemUsecase {
	return &itemUsecase{
		itemRepo: itemRepo,
		listRepo: listRepo,
	}
}

// ownedList loads a list and verifies ownership
func (u *itemUsecase) ownedList(userID, listID string) error {
	list, err := u.listRepo.FindByID(listID)
	if err != nil {
		return err
	}
	if list == nil {
		return errors.New("list not found")
	}
	if list.UserID != userID {
		return errors.New("unauthorized")
	}
	return nil
}

func (u *itemUsecase) GetListItems(userID, listID string) ([]*domain.ListItem, error) {
	if err := u.ownedList(userID, listID); err != nil {
		return nil, err
	}
	return u.itemRepo.FindByListID(listID)
}

func (u *itemUsecase) AddItem(userID, listID, content string, notes *string, priority *string) (*domain.ListItem, error) {
	if err := u.ownedList(userID, listID); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("content is required")
	}

	item := &domain.ListItem{
		ListID:      listID,
		Content:     content,
		Notes:       notes,
		Completed:   false,
		Type:        domain.ItemTypeTask,
		DisplayMode: domain.DisplayModeTodoStrike,
	}
	if priority != nil {
		p := domain.Priority(*priority)
		if !p.IsValid() {
			return nil, errors.New("invalid priority")
		}
		item.Priority = &p
	}

	if err := u.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *itemUsecase) UpdateItem(userID, listID, itemID string, updates ItemUpdateRequest) (*domain.ListItem, error) {
	if err := u.ownedList(userID, listID); err != nil {
		return nil, err
	}

	item, err := u.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.ListID != listID {
		return nil, errors.New("item not found")
	}

	if updates.Content != nil && *updates.Content != "" {
		item.Content = *updates.Content
	}
	if updates.Notes != nil {
		if *updates.Notes == "" {
			item.Notes = nil
		} else {
			item.Notes = updates.Notes
		}
	}
	if updates.Completed != nil {
		item.Completed = *updates.Completed
	}
	if updates.Priority != nil {
		if *updates.Priority == "" {
			item.Priority = nil
		} else {
			p := domain.Priority(*updates.Priority)
			if !p.IsValid() {
				return nil, errors.New("invalid priority")
			}
			item.Priority = &p
		}
	}
	if updates.DisplayMode != nil {
		d := domain.DisplayMode(*updates.DisplayMode)
		if !d.IsValid() {
			return nil, errors.New("invalid display mode")
		}
		item.DisplayMode = d
	}

	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *itemUsecase) DeleteItem(userID, listID, itemID string) error {
	if err := u.ownedList(userID, listID); err != nil {
		return err
	}
	return u.itemRepo.Delete(listID, itemID)
}

func (u *itemUsecase) ClearList(userID, listID string) error {
	if err := u.ownedList(userID, listID); err != nil {
		return err
	}
	return u.itemRepo.DeleteByListID(listID)
}
