package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

const notificationStale = 30 * time.Second

// EventSink receives bridge events; the websocket hub implements it.
type EventSink interface {
	Publish(Envelope)
}

// NotificationBridge observes the polled orders collection and turns changes
// into user-facing events. It is a read-only observer: it never mutates
// orders, tables or tickets.
type NotificationBridge struct {
	Cache *cache.Store
	Repo  *repository.NotificationRepository
	Sink  EventSink

	prev   map[string]entity.Order
	primed bool
	log    *slog.Logger
}

func NewNotificationBridge(store *cache.Store, repo *repository.NotificationRepository, sink EventSink, log *slog.Logger) *NotificationBridge {
	if log == nil {
		log = slog.Default()
	}
	return &NotificationBridge{Cache: store, Repo: repo, Sink: sink, log: log}
}

// Observe diffs a fresh orders snapshot against the previous one and returns
// the events it implies. The first observation only establishes the baseline:
// pre-existing orders never produce synthetic new-order events. Only id
// arrival and status changes emit; item edits and note changes are silent.
func (b *NotificationBridge) Observe(orders []entity.Order) []Event {
	next := make(map[string]entity.Order, len(orders))
	for _, o := range orders {
		next[o.ID] = o
	}

	if !b.primed {
		b.prev = next
		b.primed = true
		return nil
	}

	var events []Event
	for _, o := range orders {
		old, seen := b.prev[o.ID]
		switch {
		case !seen:
			events = append(events, NewOrderEvent{Order: o})
		case old.Status != o.Status:
			events = append(events, OrderStatusEvent{
				OrderID: o.ID,
				TableID: o.TableID,
				From:    old.Status,
				To:      o.Status,
			})
		}
	}
	b.prev = next
	return events
}

// Run subscribes to the orders poll and fans each diffed event out to the
// websocket feed and the persisted notification list. Only poll results are
// diffed; optimistic mutation values never reach Observe, so a rejected and
// rolled-back change cannot masquerade as a pair of server-side transitions.
func (b *NotificationBridge) Run(ctx context.Context, ordersLoader cache.Loader, interval time.Duration) {
	sub := b.Cache.SubscribeLoads(KeyOrders, interval, ordersLoader)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case v := <-sub.C:
			orders, ok := v.([]entity.Order)
			if !ok {
				continue
			}
			for _, ev := range b.Observe(orders) {
				b.emit(ctx, ev)
			}
		}
	}
}

// Emit publishes an event that originated outside the poll diff (upstream
// push messages, payment completion).
func (b *NotificationBridge) Emit(ctx context.Context, ev Event) {
	b.emit(ctx, ev)
}

func (b *NotificationBridge) emit(ctx context.Context, ev Event) {
	if b.Sink != nil {
		b.Sink.Publish(Envelop(ev))
	}
	if _, err := b.Repo.Create(ctx, &entity.Notification{
		Type:      ev.EventType(),
		Message:   ev.Message(),
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		b.log.Warn("notification persist failed", "type", ev.EventType(), "err", err)
	}
	b.Cache.Invalidate(KeyNotifications)
}

// NotificationService is the read/ack side of the notification list.
type NotificationService struct {
	Cache *cache.Store
	Repo  *repository.NotificationRepository
}

func NewNotificationService(store *cache.Store, repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Cache: store, Repo: repo}
}

func (s *NotificationService) List(ctx context.Context) ([]entity.Notification, error) {
	v, err := s.Cache.Fetch(ctx, KeyNotifications, notificationStale, func(ctx context.Context) (any, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Notification), nil
}

// UnreadCount drives the badge.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, nt := range all {
		if !nt.Read {
			n++
		}
	}
	return n, nil
}

// MarkRead acknowledges one notification, optimistically.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	err := s.Cache.Mutate(ctx, KeyNotifications,
		func(current any) any {
			old, _ := current.([]entity.Notification)
			next := make([]entity.Notification, len(old))
			copy(next, old)
			for i := range next {
				if next[i].ID == id {
					next[i].Read = true
				}
			}
			return next
		},
		func(ctx context.Context) (any, error) {
			_, perr := s.Repo.MarkRead(ctx, id)
			return nil, perr
		},
	)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(KeyNotifications)
	return nil
}

// MarkAllRead acknowledges every unread notification.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := s.Repo.ListUnread(ctx)
	if err != nil {
		return 0, err
	}
	for _, n := range unread {
		if _, err := s.Repo.MarkRead(ctx, n.ID); err != nil {
			return 0, err
		}
	}
	s.Cache.Invalidate(KeyNotifications)
	return len(unread), nil
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(KeyNotifications)
	return nil
}
