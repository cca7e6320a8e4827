package services

import (
	"context"
	"testing"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

func window(d *entity.Discount) *entity.Discount {
	d.StartDate = time.Now().Add(-24 * time.Hour)
	d.EndDate = time.Now().Add(24 * time.Hour)
	return d
}

func TestApplyDiscount(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name     string
		d        *entity.Discount
		subtotal float64
		want     float64
	}{
		{"nil discount", nil, 100, 0},
		{"inactive", window(&entity.Discount{Type: entity.DiscountPercentage, Value: 10}), 100, 0},
		{"ten percent of 200", window(&entity.Discount{Type: entity.DiscountPercentage, Value: 10, IsActive: true}), 200, 20},
		{"fixed amount", window(&entity.Discount{Type: entity.DiscountFixed, Value: 30, IsActive: true}), 100, 30},
		{"fixed clamped to subtotal", window(&entity.Discount{Type: entity.DiscountFixed, Value: 150, IsActive: true}), 100, 100},
		{"hundred percent", window(&entity.Discount{Type: entity.DiscountPercentage, Value: 100, IsActive: true}), 80, 80},
		{"below min amount", window(&entity.Discount{Type: entity.DiscountPercentage, Value: 10, MinAmount: 150, IsActive: true}), 100, 0},
		{"at min amount", window(&entity.Discount{Type: entity.DiscountPercentage, Value: 10, MinAmount: 100, IsActive: true}), 100, 10},
		{"unknown type", window(&entity.Discount{Type: "bogus", Value: 10, IsActive: true}), 100, 0},
		{"negative value", window(&entity.Discount{Type: entity.DiscountFixed, Value: -5, IsActive: true}), 100, 0},
		{
			"expired",
			&entity.Discount{
				Type: entity.DiscountPercentage, Value: 10, IsActive: true,
				StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour),
			},
			100, 0,
		},
		{
			"not started yet",
			&entity.Discount{
				Type: entity.DiscountPercentage, Value: 10, IsActive: true,
				StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour),
			},
			100, 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ApplyDiscount(c.d, c.subtotal, now); got != c.want {
				t.Errorf("ApplyDiscount = %v, want %v", got, c.want)
			}
		})
	}
}

func TestApplyDiscountNeverMutatesEntity(t *testing.T) {
	d := window(&entity.Discount{Type: entity.DiscountPercentage, Value: 10, IsActive: true, UsedCount: 3})
	before := *d
	ApplyDiscount(d, 200, time.Now())
	if *d != before {
		t.Fatalf("entity mutated: %+v", d)
	}
}

func TestRedeemIncrementsUsedCountOnce(t *testing.T) {
	f := newFakeStore(t)
	c := cache.NewStore(discardLogger())
	t.Cleanup(c.Close)
	svc := NewDiscountService(c, repository.NewDiscountRepository(f.client()))

	f.seed("discounts", window(&entity.Discount{ID: "d1", Code: "X", Type: entity.DiscountFixed, Value: 10, IsActive: true, UsedCount: 4}))

	if err := svc.Redeem(context.Background(), "d1"); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if doc := f.doc("discounts", "d1"); doc["usedCount"] != float64(5) {
		t.Fatalf("usedCount = %v, want 5", doc["usedCount"])
	}
}
