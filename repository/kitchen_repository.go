package repository

import (
	"context"
	"net/url"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type KitchenRepository struct {
	api *rest.Client
}

func NewKitchenRepository(api *rest.Client) *KitchenRepository {
	return &KitchenRepository{api: api}
}

// GET /kitchenOrders
func (r *KitchenRepository) List(ctx context.Context) ([]entity.KitchenOrder, error) {
	var out []entity.KitchenOrder
	err := r.api.Get(ctx, "/kitchenOrders", nil, &out)
	return out, err
}

// ListActive drops tickets whose every item is already ready.
func (r *KitchenRepository) ListActive(ctx context.Context) ([]entity.KitchenOrder, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entity.KitchenOrder, 0, len(all))
	for _, k := range all {
		if !k.AllReady() {
			active = append(active, k)
		}
	}
	return active, nil
}

// GET /kitchenOrders?orderId=
func (r *KitchenRepository) ListByOrder(ctx context.Context, orderID string) ([]entity.KitchenOrder, error) {
	q := url.Values{"orderId": {orderID}}
	var out []entity.KitchenOrder
	err := r.api.Get(ctx, "/kitchenOrders", q, &out)
	return out, err
}

// GET /kitchenOrders/:id
func (r *KitchenRepository) Get(ctx context.Context, id string) (*entity.KitchenOrder, error) {
	var out entity.KitchenOrder
	if err := r.api.Get(ctx, "/kitchenOrders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /kitchenOrders
func (r *KitchenRepository) Create(ctx context.Context, k *entity.KitchenOrder) (*entity.KitchenOrder, error) {
	var out entity.KitchenOrder
	if err := r.api.Post(ctx, "/kitchenOrders", k, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /kitchenOrders/:id
func (r *KitchenRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.KitchenOrder, error) {
	var out entity.KitchenOrder
	if err := r.api.Patch(ctx, "/kitchenOrders/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /kitchenOrders/:id
func (r *KitchenRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/kitchenOrders/"+id)
}
