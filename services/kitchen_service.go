package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

const (
	kitchenStale = 5 * time.Second

	// Tickets older than this escalate to high urgency on the display even
	// when no explicit priority was stored.
	escalateAfter = 900 * time.Second
)

// Ticket is the display projection of a kitchen order: elapsed wait, the
// effective priority and whether that priority was derived from age rather
// than set by staff.
type Ticket struct {
	entity.KitchenOrder
	ElapsedSeconds int64           `json:"elapsedSeconds"`
	Urgency        entity.Priority `json:"urgency"`
	Escalated      bool            `json:"escalated"`
}

type KitchenService struct {
	Cache  *cache.Store
	Repo   *repository.KitchenRepository
	Orders *OrderService

	log *slog.Logger
	now func() time.Time
}

func NewKitchenService(store *cache.Store, repo *repository.KitchenRepository, orders *OrderService, log *slog.Logger) *KitchenService {
	if log == nil {
		log = slog.Default()
	}
	return &KitchenService{Cache: store, Repo: repo, Orders: orders, log: log, now: time.Now}
}

// Tickets returns the active kitchen orders projected for display: urgent
// first, then high/normal/low, oldest wait breaking ties.
func (s *KitchenService) Tickets(ctx context.Context) ([]Ticket, error) {
	v, err := s.Cache.Fetch(ctx, KeyKitchen, kitchenStale, func(ctx context.Context) (any, error) {
		return s.Repo.ListActive(ctx)
	})
	if err != nil {
		return nil, err
	}
	return Project(v.([]entity.KitchenOrder), s.now()), nil
}

// Project annotates and orders kitchen orders for display. Pure: it never
// mutates the stored priority field.
func Project(orders []entity.KitchenOrder, now time.Time) []Ticket {
	tickets := make([]Ticket, 0, len(orders))
	for _, k := range orders {
		elapsed := now.Sub(k.CreatedAt)
		t := Ticket{
			KitchenOrder:   k,
			ElapsedSeconds: int64(elapsed / time.Second),
			Urgency:        k.Priority,
		}
		if t.Urgency == "" {
			t.Urgency = entity.PriorityNormal
			if elapsed > escalateAfter {
				t.Urgency = entity.PriorityHigh
				t.Escalated = true
			}
		}
		tickets = append(tickets, t)
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		if tickets[i].Urgency.Rank() != tickets[j].Urgency.Rank() {
			return tickets[i].Urgency.Rank() > tickets[j].Urgency.Rank()
		}
		return tickets[i].ElapsedSeconds > tickets[j].ElapsedSeconds
	})
	return tickets
}

// Run keeps the kitchen collection polled while the context lives. The
// interval comes from the stored preference (kitchenRefreshInterval, while
// auto-refresh is on) and falls back to the given default; a settings update
// restarts the subscription so the new interval takes effect immediately.
func (s *KitchenService) Run(ctx context.Context, settings *SettingsService, fallback time.Duration) {
	loader := func(ctx context.Context) (any, error) {
		return s.Repo.ListActive(ctx)
	}
	for {
		interval := fallback
		auto := true
		if p, err := settings.Get(); err == nil {
			auto = p.KitchenAutoRefresh
			if p.KitchenRefreshMS >= 1000 {
				interval = time.Duration(p.KitchenRefreshMS) * time.Millisecond
			}
		} else {
			s.log.Warn("kitchen refresh preference unavailable", "err", err)
		}

		if !auto {
			select {
			case <-ctx.Done():
				return
			case <-settings.Changed():
			}
			continue
		}

		sub := s.Cache.SubscribeLoads(KeyKitchen, interval, loader)
		resubscribe := false
		for !resubscribe {
			select {
			case <-ctx.Done():
				sub.Close()
				return
			case <-settings.Changed():
				resubscribe = true
			case <-sub.C:
				// refreshed values are served from the cache by Tickets
			}
		}
		sub.Close()
	}
}

// StartItem moves one item pending→preparing, stamping startedAt. The order's
// own status is untouched: item preparation state never drives it.
func (s *KitchenService) StartItem(ctx context.Context, ticketID, menuItemID string) error {
	return s.updateItem(ctx, ticketID, menuItemID, entity.ItemPreparing)
}

// ReadyItem moves one item preparing→ready, stamping completedAt.
func (s *KitchenService) ReadyItem(ctx context.Context, ticketID, menuItemID string) error {
	return s.updateItem(ctx, ticketID, menuItemID, entity.ItemReady)
}

func (s *KitchenService) updateItem(ctx context.Context, ticketID, menuItemID string, status entity.ItemStatus) error {
	k, err := s.Repo.Get(ctx, ticketID)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	found := false
	for i := range k.Items {
		if k.Items[i].MenuItemID != menuItemID {
			continue
		}
		found = true
		cur := k.Items[i].Status
		if cur == status {
			return nil // idempotent
		}
		switch {
		case status == entity.ItemPreparing && cur == entity.ItemPending:
			k.Items[i].Status = status
			k.Items[i].StartedAt = &now
		case status == entity.ItemReady && cur == entity.ItemPreparing:
			k.Items[i].Status = status
			k.Items[i].CompletedAt = &now
		default:
			return &InvalidStateError{Op: "mark item " + string(status), Current: string(cur)}
		}
	}
	if !found {
		return &ValidationError{Field: "menuItemId", Msg: "not on this ticket"}
	}

	err = s.Cache.Mutate(ctx, KeyKitchen,
		func(current any) any {
			old, _ := current.([]entity.KitchenOrder)
			next := make([]entity.KitchenOrder, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == ticketID {
					next[i].Items = k.Items
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			_, perr := s.Repo.Patch(ctx, ticketID, map[string]any{"items": k.Items})
			return nil, perr
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyKitchen)
	s.Cache.Invalidate(KeyOrders)
	return nil
}

// MarkAllReady finishes every unfinished item on the ticket, then triggers
// the lifecycle engine's explicit aggregate-to-ready step for the order.
func (s *KitchenService) MarkAllReady(ctx context.Context, ticketID string) (*entity.Order, error) {
	k, err := s.Repo.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	for i := range k.Items {
		if k.Items[i].Status != entity.ItemReady {
			if k.Items[i].StartedAt == nil {
				k.Items[i].StartedAt = &now
			}
			k.Items[i].Status = entity.ItemReady
			k.Items[i].CompletedAt = &now
		}
	}
	if _, err := s.Repo.Patch(ctx, ticketID, map[string]any{
		"items":       k.Items,
		"completedAt": now,
	}); err != nil {
		return nil, err
	}

	order, err := s.Orders.AggregateReady(ctx, k.OrderID)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(KeyKitchen)
	return order, nil
}

// SetPriority stores an explicit priority on the ticket, optimistically.
func (s *KitchenService) SetPriority(ctx context.Context, ticketID string, p entity.Priority) error {
	switch p {
	case entity.PriorityLow, entity.PriorityNormal, entity.PriorityHigh, entity.PriorityUrgent:
	default:
		return &ValidationError{Field: "priority", Msg: "unknown priority"}
	}
	err := s.Cache.Mutate(ctx, KeyKitchen,
		func(current any) any {
			old, _ := current.([]entity.KitchenOrder)
			next := make([]entity.KitchenOrder, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == ticketID {
					next[i].Priority = p
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			_, perr := s.Repo.Patch(ctx, ticketID, map[string]any{"priority": p})
			return nil, perr
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyKitchen)
	return nil
}

// Stats aggregates item counts for the kitchen header.
type KitchenStats struct {
	TotalOrders    int `json:"totalOrders"`
	TotalItems     int `json:"totalItems"`
	PendingItems   int `json:"pendingItems"`
	PreparingItems int `json:"preparingItems"`
	ReadyItems     int `json:"readyItems"`
	HighPriority   int `json:"highPriorityOrders"`
}

func (s *KitchenService) Stats(ctx context.Context) (*KitchenStats, error) {
	tickets, err := s.Tickets(ctx)
	if err != nil {
		return nil, err
	}
	st := &KitchenStats{TotalOrders: len(tickets)}
	for _, t := range tickets {
		st.TotalItems += len(t.Items)
		for _, it := range t.Items {
			switch it.Status {
			case entity.ItemPending:
				st.PendingItems++
			case entity.ItemPreparing:
				st.PreparingItems++
			case entity.ItemReady:
				st.ReadyItems++
			}
		}
		if t.Urgency == entity.PriorityHigh || t.Urgency == entity.PriorityUrgent {
			st.HighPriority++
		}
	}
	return st, nil
}
