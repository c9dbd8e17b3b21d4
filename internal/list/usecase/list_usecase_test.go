package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	itemdomain "smartlists-backend/internal/item/domain"
	"smartlists-backend/internal/list/domain"
	"smartlists-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOracle struct {
	analyzeFn func(ctx context.Context, purpose string) (*ai.PurposeAnalysis, error)
}

func (m *mockOracle) CategorizeItems(ctx context.Context, input string, now time.Time, lists []ai.ListRule) ([]json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

func (m *mockOracle) AnalyzePurpose(ctx context.Context, purpose string) (*ai.PurposeAnalysis, error) {
	return m.analyzeFn(ctx, purpose)
}

type fakeListRepo struct {
	lists   map[string]*domain.List
	deleted []string
}

func newFakeListRepo(lists ...*domain.List) *fakeListRepo {
	repo := &fakeListRepo{lists: make(map[string]*domain.List)}
	for _, l := range lists {
		repo.lists[l.ID] = l
	}
	return repo
}

func (f *fakeListRepo) Create(list *domain.List) error {
	if list.ID == "" {
		list.ID = "generated-id"
	}
	f.lists[list.ID] = list
	return nil
}
func (f *fakeListRepo) FindByID(id string) (*domain.List, error) { return f.lists[id], nil }
func (f *fakeListRepo) FindByUserID(userID string) ([]*domain.List, error) {
	var out []*domain.List
	for _, l := range f.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (f *fakeListRepo) Update(list *domain.List) error { f.lists[list.ID] = list; return nil }
func (f *fakeListRepo) Delete(id string) error {
	delete(f.lists, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeItemRepo struct {
	clearedLists []string
}

func (f *fakeItemRepo) Create(item *itemdomain.ListItem) error            { return nil }
func (f *fakeItemRepo) FindByID(id string) (*itemdomain.ListItem, error)  { return nil, nil }
func (f *fakeItemRepo) FindByListID(id string) ([]*itemdomain.ListItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) Update(item *itemdomain.ListItem) error { return nil }
func (f *fakeItemRepo) Delete(listID, itemID string) error     { return nil }
func (f *fakeItemRepo) DeleteByListID(listID string) error {
	f.clearedLists = append(f.clearedLists, listID)
	return nil
}

func TestCreateList(t *testing.T) {
	repo := newFakeListRepo()
	uc := NewListUsecase(repo, &fakeItemRepo{})

	list, err := uc.CreateList("user-1", "Groceries", "weekly shopping", "food items")
	require.NoError(t, err)
	assert.Equal(t, "user-1", list.UserID)
	assert.Equal(t, "food items", list.Rules)

	_, err = uc.CreateList("user-1", "", "", "")
	assert.Error(t, err)
}

func TestGetListByID_Ownership(t *testing.T) {
	repo := newFakeListRepo(&domain.List{ID: "list-1", UserID: "user-1", Name: "Groceries"})
	uc := NewListUsecase(repo, &fakeItemRepo{})

	list, err := uc.GetListByID("user-1", "list-1")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Name)

	_, err = uc.GetListByID("user-2", "list-1")
	assert.EqualError(t, err, "unauthorized")

	_, err = uc.GetListByID("user-1", "list-404")
	assert.EqualError(t, err, "list not found")
}

func TestUpdateList_PartialFields(t *testing.T) {
	repo := newFakeListRepo(&domain.List{ID: "list-1", UserID: "user-1", Name: "Groceries", Rules: "food"})
	uc := NewListUsecase(repo, &fakeItemRepo{})

	rules := "food and drinks"
	list, err := uc.UpdateList("user-1", "list-1", ListUpdateRequest{Rules: &rules})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, "food and drinks", list.Rules)

	empty := ""
	list, err = uc.UpdateList("user-1", "list-1", ListUpdateRequest{Name: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Name)
}

func TestDeleteList_CascadesItems(t *testing.T) {
	repo := newFakeListRepo(&domain.List{ID: "list-1", UserID: "user-1", Name: "Groceries"})
	items := &fakeItemRepo{}
	uc := NewListUsecase(repo, items)

	require.NoError(t, uc.DeleteList("user-1", "list-1"))
	assert.Equal(t, []string{"list-1"}, items.clearedLists)
	assert.Equal(t, []string{"list-1"}, repo.deleted)

	assert.Error(t, uc.DeleteList("user-1", "list-1"))
}

func TestAnalyzePurpose_Success(t *testing.T) {
	uc := NewListUsecase(newFakeListRepo(), &fakeItemRepo{})
	uc.SetOracleService(&mockOracle{analyzeFn: func(ctx context.Context, purpose string) (*ai.PurposeAnalysis, error) {
		return &ai.PurposeAnalysis{Description: "Weekly groceries", Rules: "food, drinks, household supplies"}, nil
	}})

	analysis := uc.AnalyzePurpose(context.Background(), "track my grocery shopping")
	assert.Equal(t, "Weekly groceries", analysis.Description)
	assert.Equal(t, "food, drinks, household supplies", analysis.Rules)
}

func TestAnalyzePurpose_FallbackOnError(t *testing.T) {
	purpose := "track my grocery shopping"
	uc := NewListUsecase(newFakeListRepo(), &fakeItemRepo{})
	uc.SetOracleService(&mockOracle{analyzeFn: func(ctx context.Context, p string) (*ai.PurposeAnalysis, error) {
		return nil, errors.New("request timed out")
	}})

	analysis := uc.AnalyzePurpose(context.Background(), purpose)
	assert.Equal(t, purposeFallbackDescription, analysis.Description)
	assert.Equal(t, purpose, analysis.Rules)
}

func TestAnalyzePurpose_NoOracleConfigured(t *testing.T) {
	uc := NewListUsecase(newFakeListRepo(), &fakeItemRepo{})

	analysis := uc.AnalyzePurpose(context.Background(), "anything")
	assert.Equal(t, purposeFallbackDescription, analysis.Description)
	assert.Equal(t, "anything", analysis.Rules)
}
