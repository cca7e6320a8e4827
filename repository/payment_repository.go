package repository

import (
	"context"
	"net/url"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type PaymentRepository struct {
	api *rest.Client
}

func NewPaymentRepository(api *rest.Client) *PaymentRepository {
	return &PaymentRepository{api: api}
}

// GET /payments
func (r *PaymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.api.Get(ctx, "/payments", nil, &out)
	return out, err
}

// GET /payments?orderId=
func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	q := url.Values{"orderId": {orderID}}
	var out []entity.Payment
	err := r.api.Get(ctx, "/payments", q, &out)
	return out, err
}

// POST /payments
func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) (*entity.Payment, error) {
	var out entity.Payment
	if err := r.api.Post(ctx, "/payments", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /payments/:id
func (r *PaymentRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Payment, error) {
	var out entity.Payment
	if err := r.api.Patch(ctx, "/payments/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /payments/:id
func (r *PaymentRepository) Get(ctx context.Context, id string) (*entity.Payment, error) {
	var out entity.Payment
	if err := r.api.Get(ctx, "/payments/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
