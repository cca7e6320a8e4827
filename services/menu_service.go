package services

import (
	"context"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

const menuStale = 5 * time.Minute

type MenuService struct {
	Cache      *cache.Store
	Repo       *repository.MenuRepository
	Categories *repository.CategoryRepository
}

func NewMenuService(store *cache.Store, repo *repository.MenuRepository, cats *repository.CategoryRepository) *MenuService {
	return &MenuService{Cache: store, Repo: repo, Categories: cats}
}

func (s *MenuService) List(ctx context.Context, categoryID string) ([]entity.MenuItem, error) {
	key := KeyMenu
	loader := func(ctx context.Context) (any, error) { return s.Repo.List(ctx) }
	if categoryID != "" {
		key = keyMenuByCategory(categoryID)
		loader = func(ctx context.Context) (any, error) { return s.Repo.ListByCategory(ctx, categoryID) }
	}
	v, err := s.Cache.Fetch(ctx, key, menuStale, loader)
	if err != nil {
		return nil, err
	}
	return v.([]entity.MenuItem), nil
}

func (s *MenuService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	v, err := s.Cache.Fetch(ctx, KeyCategories, menuStale, func(ctx context.Context) (any, error) {
		return s.Categories.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Category), nil
}

// SetAvailability toggles the stock flag, optimistically on the full menu key.
func (s *MenuService) SetAvailability(ctx context.Context, id string, isAvailable bool) error {
	err := s.Cache.Mutate(ctx, KeyMenu,
		func(current any) any {
			old, _ := current.([]entity.MenuItem)
			next := make([]entity.MenuItem, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == id {
					next[i].IsAvailable = isAvailable
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			_, perr := s.Repo.UpdateAvailability(ctx, id, isAvailable)
			return nil, perr
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyMenu)
	return nil
}

// UpdatePrice changes the menu price. Prices already captured on order items
// are untouched by design.
func (s *MenuService) UpdatePrice(ctx context.Context, id string, price float64) error {
	if price <= 0 {
		return &ValidationError{Field: "price", Msg: "must be positive"}
	}
	if _, err := s.Repo.UpdatePrice(ctx, id, price); err != nil {
		return err
	}
	s.Cache.Invalidate(KeyMenu)
	return nil
}
