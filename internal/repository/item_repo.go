package repository

import (
	"time"

	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/internal/domain"
)

// ItemRepository item data access
type ItemRepository interface {
	FindAll() ([]domain.Item, error)
	FindByID(id int) (*domain.Item, error)
}

type itemRepository struct {
	items []domain.Item
}

// NewItemRepository creates an ItemRepository over a fixed set of items.
// The slice is copied so callers cannot mutate the repository's contents.
func NewItemRepository(items []domain.Item) ItemRepository {
	return &itemRepository{items: append([]domain.Item(nil), items...)}
}

// NewSampleItemRepository returns the repository served by the sample API
func NewSampleItemRepository() ItemRepository {
	return NewItemRepository(SampleItems())
}

// SampleItems is the fixed data set of the items endpoints
func SampleItems() []domain.Item {
	created := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	return []domain.Item{
		{ID: 1, Name: "Deploy to Render", Description: "Ship the service to Render as a web service", Status: domain.ItemStatusCompleted, CreatedAt: created},
		{ID: 2, Name: "Configure environment variables", Description: "Set NODE_ENV, PORT and CORS_ORIGIN in the dashboard", Status: domain.ItemStatusInProgress, CreatedAt: created.Add(24 * time.Hour)},
		{ID: 3, Name: "Set up health checks", Description: "Point the health check path at /health", Status: domain.ItemStatusPending, CreatedAt: created.Add(48 * time.Hour)},
	}
}

func (r *itemRepository) FindAll() ([]domain.Item, error) {
	return append([]domain.Item(nil), r.items...), nil
}

func (r *itemRepository) FindByID(id int) (*domain.Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, common.ErrNotFound
}
