package services

import (
	"context"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

const inventoryStale = time.Minute

type InventoryService struct {
	Cache  *cache.Store
	Repo   *repository.InventoryRepository
	Bridge *NotificationBridge
}

func NewInventoryService(store *cache.Store, repo *repository.InventoryRepository, bridge *NotificationBridge) *InventoryService {
	return &InventoryService{Cache: store, Repo: repo, Bridge: bridge}
}

func (s *InventoryService) List(ctx context.Context) ([]entity.InventoryItem, error) {
	v, err := s.Cache.Fetch(ctx, KeyInventory, inventoryStale, func(ctx context.Context) (any, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.InventoryItem), nil
}

func (s *InventoryService) ListLow(ctx context.Context) ([]entity.InventoryItem, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entity.InventoryItem, 0, len(all))
	for _, it := range all {
		if it.Low() {
			low = append(low, it)
		}
	}
	return low, nil
}

// Adjust moves an item's stock by delta. Stock never goes negative, and a
// low-stock alert fires only on the crossing, not on every adjustment while
// already low.
func (s *InventoryService) Adjust(ctx context.Context, id string, delta float64) (*entity.InventoryItem, error) {
	it, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := it.Stock + delta
	if next < 0 {
		return nil, &ValidationError{Field: "stock", Msg: "cannot go below zero"}
	}

	updated, err := s.Repo.Patch(ctx, id, map[string]any{"stock": next})
	if err != nil {
		return nil, err
	}

	if !it.Low() && updated.Low() && s.Bridge != nil {
		s.Bridge.Emit(ctx, StockAlertEvent{ItemName: updated.Name})
	}

	s.Cache.Invalidate(KeyInventory)
	return updated, nil
}
