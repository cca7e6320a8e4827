package services

import (
	"context"
	"time"

	"github.com/asliq/akilli-garson/entity"
)

// The lifecycle is a strict forward progression. Cancellation is legal from
// pending only; walking back a preparing or ready order is deliberately not
// offered as a transition.
var forward = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderPending:   entity.OrderPreparing,
	entity.OrderPreparing: entity.OrderReady,
	entity.OrderReady:     entity.OrderServed,
	entity.OrderServed:    entity.OrderPaid,
}

func legalTransition(from, to entity.OrderStatus) bool {
	if forward[from] == to {
		return true
	}
	return to == entity.OrderCancelled && from == entity.OrderPending
}

// UpdateStatus moves an order one step through its lifecycle. Re-issuing a
// transition the order already completed is a no-op, not an error. The rule
// check runs before any network call; the status write itself goes through
// the cache as an optimistic mutation so the UI flips immediately and rolls
// back on failure.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, target entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == target {
		return o, nil // idempotent
	}
	if !legalTransition(o.Status, target) {
		return nil, &InvalidStateError{Op: "transition to " + string(target), Current: string(o.Status)}
	}

	fields := map[string]any{"status": target}
	if target == entity.OrderPaid || target == entity.OrderCancelled {
		fields["completedAt"] = time.Now().UTC()
	}

	var updated *entity.Order
	err = s.Cache.Mutate(ctx, KeyOrders,
		func(current any) any {
			old, _ := current.([]entity.Order)
			next := make([]entity.Order, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == id {
					next[i].Status = target
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			var perr error
			updated, perr = s.Repo.Patch(ctx, id, fields)
			return nil, perr
		},
	)
	if err != nil {
		return nil, err
	}

	if target == entity.OrderPaid || target == entity.OrderCancelled {
		if rerr := s.releaseTableIfIdle(ctx, o.TableID, id); rerr != nil {
			s.log.Warn("table release failed", "tableId", o.TableID, "err", rerr)
		}
	}

	s.Cache.Invalidate(KeyOrders)
	s.Cache.Invalidate(KeyKitchen)
	return updated, nil
}

// Cancel is the explicit cancellation action. Only pending orders qualify.
func (s *OrderService) Cancel(ctx context.Context, id string) (*entity.Order, error) {
	return s.UpdateStatus(ctx, id, entity.OrderCancelled)
}

// AggregateReady is the explicit aggregate-to-ready step the kitchen invokes
// after every item finished. Item statuses never drive the order status by
// themselves; this walks the order forward through the legal transitions.
func (s *OrderService) AggregateReady(ctx context.Context, id string) (*entity.Order, error) {
	o, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch o.Status {
	case entity.OrderReady:
		return o, nil
	case entity.OrderPending:
		if _, err := s.UpdateStatus(ctx, id, entity.OrderPreparing); err != nil {
			return nil, err
		}
		return s.UpdateStatus(ctx, id, entity.OrderReady)
	case entity.OrderPreparing:
		return s.UpdateStatus(ctx, id, entity.OrderReady)
	}
	return nil, &InvalidStateError{Op: "aggregate to ready", Current: string(o.Status)}
}

// releaseTableIfIdle flips the table back to available when the order being
// closed was its only open one. Other open orders keep it occupied.
func (s *OrderService) releaseTableIfIdle(ctx context.Context, tableID, closedID string) error {
	open, err := s.Repo.ListOpenByTable(ctx, tableID, closedID)
	if err != nil {
		return err
	}
	if len(open) > 0 {
		return nil
	}
	return s.setTableStatus(ctx, tableID, entity.TableAvailable)
}

// setTableStatus writes a table status through the cache: optimistic flip on
// the tables collection, rollback on failure.
func (s *OrderService) setTableStatus(ctx context.Context, tableID string, status entity.TableStatus) error {
	err := s.Cache.Mutate(ctx, KeyTables,
		func(current any) any {
			old, _ := current.([]entity.Table)
			next := make([]entity.Table, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == tableID {
					next[i].Status = status
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			_, perr := s.Tables.UpdateStatus(ctx, tableID, status)
			return nil, perr
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyTables)
	return nil
}
