package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock ItemRepository ---

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) FindAll() ([]domain.Item, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockItemRepo) FindByID(id int) (*domain.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func TestGetItem_Found(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("FindByID", 1).Return(&domain.Item{ID: 1, Name: "Deploy to Render"}, nil)

	item, err := NewItemService(repo).GetItem(1)

	assert.NoError(t, err)
	assert.Equal(t, "Deploy to Render", item.Name)
	repo.AssertExpectations(t)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("FindByID", 42).Return(nil, common.ErrNotFound)

	_, err := NewItemService(repo).GetItem(42)

	assert.Equal(t, http.StatusNotFound, common.StatusOf(err))
	assert.Equal(t, "Item with id 42 not found", common.MessageOf(err))
}

func TestGetItem_RepositoryError(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("FindByID", 1).Return(nil, errors.New("disk on fire"))

	_, err := NewItemService(repo).GetItem(1)

	assert.Equal(t, http.StatusInternalServerError, common.StatusOf(err))
}

func TestListItems(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("FindAll").Return([]domain.Item{{ID: 1}, {ID: 2}}, nil)

	items, err := NewItemService(repo).ListItems()

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
