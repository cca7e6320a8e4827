package services

import (
	"context"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

// ApplyDiscount computes the amount a discount takes off the given subtotal
// at checkout time. It is pure: the discount entity is never mutated here and
// no counter moves (see DiscountService.Redeem). The result is always within
// [0, subtotal].
func ApplyDiscount(d *entity.Discount, subtotal float64, now time.Time) float64 {
	if d == nil || !d.IsActive {
		return 0
	}
	if now.Before(d.StartDate) || now.After(d.EndDate) {
		return 0
	}
	if subtotal < d.MinAmount {
		return 0
	}

	var amount float64
	switch d.Type {
	case entity.DiscountPercentage:
		amount = subtotal * d.Value / 100
	case entity.DiscountFixed:
		amount = d.Value
	default:
		return 0
	}
	if amount < 0 {
		return 0
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}

type DiscountService struct {
	Cache *cache.Store
	Repo  *repository.DiscountRepository
}

func NewDiscountService(store *cache.Store, repo *repository.DiscountRepository) *DiscountService {
	return &DiscountService{Cache: store, Repo: repo}
}

const discountStale = 5 * time.Minute

func (s *DiscountService) List(ctx context.Context) ([]entity.Discount, error) {
	v, err := s.Cache.Fetch(ctx, KeyDiscounts, discountStale, func(ctx context.Context) (any, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Discount), nil
}

func (s *DiscountService) GetByCode(ctx context.Context, code string) (*entity.Discount, error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Msg: "required"}
	}
	return s.Repo.GetByCode(ctx, code)
}

func (s *DiscountService) Create(ctx context.Context, d *entity.Discount) (*entity.Discount, error) {
	if d.Code == "" {
		return nil, &ValidationError{Field: "code", Msg: "required"}
	}
	if d.Value <= 0 {
		return nil, &ValidationError{Field: "value", Msg: "must be positive"}
	}
	created, err := s.Repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(KeyDiscounts)
	return created, nil
}

func (s *DiscountService) Update(ctx context.Context, id string, fields map[string]any) (*entity.Discount, error) {
	updated, err := s.Repo.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(KeyDiscounts)
	return updated, nil
}

func (s *DiscountService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(KeyDiscounts)
	return nil
}

// Redeem is the explicit usedCount increment, invoked by payment completion
// only. ApplyDiscount never does this.
func (s *DiscountService) Redeem(ctx context.Context, id string) error {
	d, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.Repo.Patch(ctx, id, map[string]any{"usedCount": d.UsedCount + 1}); err != nil {
		return err
	}
	s.Cache.Invalidate(KeyDiscounts)
	return nil
}
