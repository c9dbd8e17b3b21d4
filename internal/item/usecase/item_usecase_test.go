package usecase

import (
	"testing"

	"smartlists-backend/internal/item/domain"
	listdomain "smartlists-backend/internal/list/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListRepo struct {
	lists map[string]*listdomain.List
}

func (f *fakeListRepo) Create(list *listdomain.List) error               { return nil }
func (f *fakeListRepo) FindByID(id string) (*listdomain.List, error)     { return f.lists[id], nil }
func (f *fakeListRepo) FindByUserID(id string) ([]*listdomain.List, error) {
	return nil, nil
}
func (f *fakeListRepo) Update(list *listdomain.List) error { return nil }
func (f *fakeListRepo) Delete(id string) error             { return nil }

type fakeItemRepo struct {
	items        map[string]*domain.ListItem
	deleted      [][2]string
	clearedLists []string
}

func newFakeItemRepo(items ...*domain.ListItem) *fakeItemRepo {
	repo := &fakeItemRepo{items: make(map[string]*domain.ListItem)}
	for _, i := range items {
		repo.items[i.ID] = i
	}
	return repo
}

func (f *fakeItemRepo) Create(item *domain.ListItem) error {
	if item.ID == "" {
		item.ID = "generated-id"
	}
	f.items[item.ID] = item
	return nil
}
func (f *fakeItemRepo) FindByID(id string) (*domain.ListItem, error) { return f.items[id], nil }
func (f *fakeItemRepo) FindByListID(listID string) ([]*domain.ListItem, error) {
	var out []*domain.ListItem
	for _, i := range f.items {
		if i.ListID == listID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (f *fakeItemRepo) Update(item *domain.ListItem) error { f.items[item.ID] = item; return nil }
func (f *fakeItemRepo) Delete(listID, itemID string) error {
	delete(f.items, itemID)
	f.deleted = append(f.deleted, [2]string{listID, itemID})
	return nil
}
func (f *fakeItemRepo) DeleteByListID(listID string) error {
	f.clearedLists = append(f.clearedLists, listID)
	return nil
}

func ownedLists() *fakeListRepo {
	return &fakeListRepo{lists: map[string]*listdomain.List{
		"list-1": {ID: "list-1", UserID: "user-1", Name: "Groceries"},
	}}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestAddItem(t *testing.T) {
	items := newFakeItemRepo()
	uc := NewItemUsecase(items, ownedLists())

	item, err := uc.AddItem("user-1", "list-1", "Milk", nil, strPtr("high"))
	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypeTask, item.Type)
	assert.False(t, item.Completed)
	assert.Equal(t, domain.DisplayModeTodoStrike, item.DisplayMode)
	require.NotNil(t, item.Priority)
	assert.Equal(t, domain.PriorityHigh, *item.Priority)

	_, err = uc.AddItem("user-1", "list-1", "", nil, nil)
	assert.EqualError(t, err, "content is required")

	_, err = uc.AddItem("user-1", "list-1", "Milk", nil, strPtr("urgent"))
	assert.EqualError(t, err, "invalid priority")

	_, err = uc.AddItem("user-2", "list-1", "Milk", nil, nil)
	assert.EqualError(t, err, "unauthorized")
}

func TestUpdateItem_PartialSemantics(t *testing.T) {
	notes := "2 liters"
	priority := domain.PriorityLow
	items := newFakeItemRepo(&domain.ListItem{
		ID: "item-1", ListID: "list-1", Content: "Milk",
		Notes: &notes, Priority: &priority,
		Type: domain.ItemTypeTask, DisplayMode: domain.DisplayModeTodoStrike,
	})
	uc := NewItemUsecase(items, ownedLists())

	t.Run("toggle completed only", func(t *testing.T) {
		item, err := uc.UpdateItem("user-1", "list-1", "item-1", ItemUpdateRequest{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, item.Completed)
		assert.Equal(t, "Milk", item.Content)
		require.NotNil(t, item.Notes)
	})

	t.Run("empty string clears notes and priority", func(t *testing.T) {
		item, err := uc.UpdateItem("user-1", "list-1", "item-1", ItemUpdateRequest{
			Notes:    strPtr(""),
			Priority: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, item.Notes)
		assert.Nil(t, item.Priority)
	})

	t.Run("invalid priority rejected", func(t *testing.T) {
		_, err := uc.UpdateItem("user-1", "list-1", "item-1", ItemUpdateRequest{Priority: strPtr("urgent")})
		assert.EqualError(t, err, "invalid priority")
	})

	t.Run("invalid display mode rejected", func(t *testing.T) {
		_, err := uc.UpdateItem("user-1", "list-1", "item-1", ItemUpdateRequest{DisplayMode: strPtr("sparkles")})
		assert.EqualError(t, err, "invalid display mode")
	})

	t.Run("display mode changed", func(t *testing.T) {
		item, err := uc.UpdateItem("user-1", "list-1", "item-1", ItemUpdateRequest{DisplayMode: strPtr("bullet")})
		require.NoError(t, err)
		assert.Equal(t, domain.DisplayModeBullet, item.DisplayMode)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := uc.UpdateItem("user-1", "list-1", "item-404", ItemUpdateRequest{Completed: boolPtr(true)})
		assert.EqualError(t, err, "item not found")
	})
}

func TestUpdateItem_WrongList(t *testing.T) {
	items := newFakeItemRepo(&domain.ListItem{ID: "item-1", ListID: "list-other", Content: "Milk"})
	lists := ownedLists()
	lists.lists["list-other"] = &listdomain.List{ID: "list-other", UserID: "user-2"}
	uc := NewItemUsecase(items, lists)

	_, err := uc.UpdateItem("user-1", "list-1", "item-1", ItemUpdateRequest{Completed: boolPtr(true)})
	assert.EqualError(t, err, "item not found")
}

func TestDeleteItemAndClearList(t *testing.T) {
	items := newFakeItemRepo(&domain.ListItem{ID: "item-1", ListID: "list-1", Content: "Milk"})
	uc := NewItemUsecase(items, ownedLists())

	require.NoError(t, uc.DeleteItem("user-1", "list-1", "item-1"))
	assert.Equal(t, [][2]string{{"list-1", "item-1"}}, items.deleted)

	require.NoError(t, uc.ClearList("user-1", "list-1"))
	assert.Equal(t, []string{"list-1"}, items.clearedLists)

	assert.EqualError(t, uc.ClearList("user-2", "list-1"), "unauthorized")
	assert.EqualError(t, uc.ClearList("user-1", "list-404"), "list not found")
}
