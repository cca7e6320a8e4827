package repository

import (
	"context"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type TableRepository struct {
	api *rest.Client
}

func NewTableRepository(api *rest.Client) *TableRepository {
	return &TableRepository{api: api}
}

// GET /tables
func (r *TableRepository) List(ctx context.Context) ([]entity.Table, error) {
	var out []entity.Table
	err := r.api.Get(ctx, "/tables", nil, &out)
	return out, err
}

// GET /tables/:id
func (r *TableRepository) Get(ctx context.Context, id string) (*entity.Table, error) {
	var out entity.Table
	if err := r.api.Get(ctx, "/tables/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /tables
func (r *TableRepository) Create(ctx context.Context, t *entity.Table) (*entity.Table, error) {
	var out entity.Table
	if err := r.api.Post(ctx, "/tables", t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /tables/:id
func (r *TableRepository) UpdateStatus(ctx context.Context, id string, status entity.TableStatus) (*entity.Table, error) {
	var out entity.Table
	if err := r.api.Patch(ctx, "/tables/"+id, map[string]any{"status": status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /tables/:id
func (r *TableRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/tables/"+id)
}
