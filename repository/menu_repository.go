package repository

import (
	"context"
	"net/url"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type MenuRepository struct {
	api *rest.Client
}

func NewMenuRepository(api *rest.Client) *MenuRepository {
	return &MenuRepository{api: api}
}

// GET /menuItems
func (r *MenuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.api.Get(ctx, "/menuItems", nil, &out)
	return out, err
}

// GET /menuItems?categoryId=
func (r *MenuRepository) ListByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error) {
	q := url.Values{"categoryId": {categoryID}}
	var out []entity.MenuItem
	err := r.api.Get(ctx, "/menuItems", q, &out)
	return out, err
}

// GET /menuItems/:id
func (r *MenuRepository) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	var out entity.MenuItem
	if err := r.api.Get(ctx, "/menuItems/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /menuItems/:id
func (r *MenuRepository) UpdateAvailability(ctx context.Context, id string, isAvailable bool) (*entity.MenuItem, error) {
	var out entity.MenuItem
	if err := r.api.Patch(ctx, "/menuItems/"+id, map[string]any{"isAvailable": isAvailable}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /menuItems/:id
func (r *MenuRepository) UpdatePrice(ctx context.Context, id string, price float64) (*entity.MenuItem, error) {
	var out entity.MenuItem
	if err := r.api.Patch(ctx, "/menuItems/"+id, map[string]any{"price": price}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type CategoryRepository struct {
	api *rest.Client
}

func NewCategoryRepository(api *rest.Client) *CategoryRepository {
	return &CategoryRepository{api: api}
}

// GET /categories
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	err := r.api.Get(ctx, "/categories", nil, &out)
	return out, err
}
