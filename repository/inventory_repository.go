package repository

import (
	"context"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type InventoryRepository struct {
	api *rest.Client
}

func NewInventoryRepository(api *rest.Client) *InventoryRepository {
	return &InventoryRepository{api: api}
}

// GET /inventory
func (r *InventoryRepository) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	err := r.api.Get(ctx, "/inventory", nil, &out)
	return out, err
}

// ListLow returns items at or below their reorder threshold.
func (r *InventoryRepository) ListLow(ctx context.Context) ([]entity.InventoryItem, error) {
	all, err := r.List(ctx)
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

// GET /inventory/:id
func (r *InventoryRepository) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	if err := r.api.Get(ctx, "/inventory/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /inventory/:id
func (r *InventoryRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	if err := r.api.Patch(ctx, "/inventory/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
