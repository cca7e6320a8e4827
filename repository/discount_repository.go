package repository

import (
	"context"
	"net/url"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type DiscountRepository struct {
	api *rest.Client
}

func NewDiscountRepository(api *rest.Client) *DiscountRepository {
	return &DiscountRepository{api: api}
}

// GET /discounts
func (r *DiscountRepository) List(ctx context.Context) ([]entity.Discount, error) {
	var out []entity.Discount
	err := r.api.Get(ctx, "/discounts", nil, &out)
	return out, err
}

// GET /discounts/:id
func (r *DiscountRepository) Get(ctx context.Context, id string) (*entity.Discount, error) {
	var out entity.Discount
	if err := r.api.Get(ctx, "/discounts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /discounts?code=
func (r *DiscountRepository) GetByCode(ctx context.Context, code string) (*entity.Discount, error) {
	q := url.Values{"code": {code}}
	var out []entity.Discount
	if err := r.api.Get(ctx, "/discounts", q, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &rest.NotFoundError{URL: "/discounts?code=" + code}
	}
	return &out[0], nil
}

// POST /discounts
func (r *DiscountRepository) Create(ctx context.Context, d *entity.Discount) (*entity.Discount, error) {
	var out entity.Discount
	if err := r.api.Post(ctx, "/discounts", d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /discounts/:id
func (r *DiscountRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Discount, error) {
	var out entity.Discount
	if err := r.api.Patch(ctx, "/discounts/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /discounts/:id
func (r *DiscountRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/discounts/"+id)
}
