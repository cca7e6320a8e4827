package services

import (
	"context"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

// Tables move slowly compared to orders.
const tableStale = 2 * time.Minute

type TableService struct {
	Cache *cache.Store
	Repo  *repository.TableRepository
}

func NewTableService(store *cache.Store, repo *repository.TableRepository) *TableService {
	return &TableService{Cache: store, Repo: repo}
}

func (s *TableService) List(ctx context.Context) ([]entity.Table, error) {
	v, err := s.Cache.Fetch(ctx, KeyTables, tableStale, func(ctx context.Context) (any, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Table), nil
}

func (s *TableService) Get(ctx context.Context, id string) (*entity.Table, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TableService) Create(ctx context.Context, t *entity.Table) (*entity.Table, error) {
	if t.Capacity < 1 {
		return nil, &ValidationError{Field: "capacity", Msg: "must be at least 1"}
	}
	if t.Status == "" {
		t.Status = entity.TableAvailable
	}
	created, err := s.Repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(KeyTables)
	return created, nil
}

// UpdateStatus is the staff-facing manual status flip (maintenance, manual
// release). Lifecycle-driven flips go through the order engine instead.
func (s *TableService) UpdateStatus(ctx context.Context, id string, status entity.TableStatus) error {
	if !status.Valid() {
		return &ValidationError{Field: "status", Msg: "unknown status"}
	}
	err := s.Cache.Mutate(ctx, KeyTables,
		func(current any) any {
			old, _ := current.([]entity.Table)
			next := make([]entity.Table, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == id {
					next[i].Status = status
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			_, perr := s.Repo.UpdateStatus(ctx, id, status)
			return nil, perr
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyTables)
	return nil
}

// Delete removes a table, optimistically. Orders referencing it are left
// untouched: tables and orders are independent top-level entities.
func (s *TableService) Delete(ctx context.Context, id string) error {
	err := s.Cache.Mutate(ctx, KeyTables,
		func(current any) any {
			old, _ := current.([]entity.Table)
			kept := make([]entity.Table, 0, len(old))
			for _, t := range old {
				if t.ID != id {
					kept = append(kept, t)
				}
			}
			return kept
		},
		func(ctx context.Context) (any, error) {
			return nil, s.Repo.Delete(ctx, id)
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyTables)
	return nil
}
