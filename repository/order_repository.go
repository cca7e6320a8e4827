package repository

import (
	"context"
	"net/url"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type OrderRepository struct {
	api *rest.Client
}

func NewOrderRepository(api *rest.Client) *OrderRepository {
	return &OrderRepository{api: api}
}

// ---------------- Orders (CRUD) ----------------

// GET /orders
func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := r.api.Get(ctx, "/orders", nil, &out)
	return out, err
}

// GET /orders?tableId=
func (r *OrderRepository) ListByTable(ctx context.Context, tableID string) ([]entity.Order, error) {
	q := url.Values{"tableId": {tableID}}
	var out []entity.Order
	err := r.api.Get(ctx, "/orders", q, &out)
	return out, err
}

// GET /orders?status=
func (r *OrderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	q := url.Values{"status": {string(status)}}
	var out []entity.Order
	err := r.api.Get(ctx, "/orders", q, &out)
	return out, err
}

// ListOpenByTable returns the table's orders still counting against its
// occupancy, excluding excludeID (the order being closed, typically).
func (r *OrderRepository) ListOpenByTable(ctx context.Context, tableID, excludeID string) ([]entity.Order, error) {
	all, err := r.ListByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	open := make([]entity.Order, 0, len(all))
	for _, o := range all {
		if o.ID != excludeID && o.Status.Open() {
			open = append(open, o)
		}
	}
	return open, nil
}

// GET /orders/:id
func (r *OrderRepository) Get(ctx context.Context, id string) (*entity.Order, error) {
	var out entity.Order
	if err := r.api.Get(ctx, "/orders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /orders
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	var out entity.Order
	if err := r.api.Post(ctx, "/orders", o, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /orders/:id
func (r *OrderRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Order, error) {
	var out entity.Order
	if err := r.api.Patch(ctx, "/orders/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /orders/:id
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/orders/"+id)
}
