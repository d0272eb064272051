package service

import (
	"errors"
	"fmt"

	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/internal/domain"
	"github.com/starterkit/render-starter/internal/repository"
)

// ItemService business logic for sample items
type ItemService interface {
	ListItems() ([]domain.Item, error)
	GetItem(id int) (*domain.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) ListItems() ([]domain.Item, error) {
	return s.repo.FindAll()
}

// GetItem returns a 404 AppError for unknown ids
func (s *itemService) GetItem(id int) (*domain.Item, error) {
	item, err := s.repo.FindByID(id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.NotFound(fmt.Sprintf("Item with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
