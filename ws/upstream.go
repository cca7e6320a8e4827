package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/services"
)

const (
	maxReconnectAttempts = 5
	reconnectDelay       = 3 * time.Second
)

// upstreamMessage is the wire form of a push message from the store.
type upstreamMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// UpstreamListener is the optional push channel. Push messages short-circuit
// the poll interval: they invalidate the affected cache keys so the next read
// refetches, and order arrivals go straight to the notification bridge.
// Polling remains the source of truth; a dead upstream degrades to polls.
type UpstreamListener struct {
	URL    string
	Cache  *cache.Store
	Bridge *services.NotificationBridge
	log    *slog.Logger
}

func NewUpstreamListener(url string, store *cache.Store, bridge *services.NotificationBridge, log *slog.Logger) *UpstreamListener {
	if log == nil {
		log = slog.Default()
	}
	return &UpstreamListener{URL: url, Cache: store, Bridge: bridge, log: log}
}

// Run connects and listens until ctx is cancelled. Each connection drop is
// retried up to maxReconnectAttempts times before giving up for good.
func (l *UpstreamListener) Run(ctx context.Context) {
	if l.URL == "" {
		return
	}

	attempts := 0
	for {
		if ctx.Err() != nil {
			return
		}
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.URL, nil)
		if err != nil {
			attempts++
			if attempts >= maxReconnectAttempts {
				l.log.Warn("upstream gone, polling only", "url", l.URL)
				return
			}
			l.log.Warn("upstream dial failed", "attempt", attempts, "err", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}
			continue
		}

		attempts = 0
		l.log.Info("upstream connected", "url", l.URL)
		l.readLoop(ctx, conn)
		conn.Close()
	}
}

func (l *UpstreamListener) readLoop(ctx context.Context, conn *websocket.Conn) {
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				l.log.Warn("upstream read failed", "err", err)
			}
			return
		}

		var msg upstreamMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			l.log.Warn("upstream message malformed", "err", err)
			continue
		}
		l.handle(ctx, msg)
	}
}

func (l *UpstreamListener) handle(ctx context.Context, msg upstreamMessage) {
	switch msg.Type {
	case "order_created":
		l.Cache.Invalidate(services.KeyOrders)
		l.Cache.Invalidate(services.KeyKitchen)
		var o entity.Order
		if err := json.Unmarshal(msg.Payload, &o); err == nil && o.ID != "" {
			l.Bridge.Emit(ctx, services.NewOrderEvent{Order: o})
		}

	case "order_updated":
		l.Cache.Invalidate(services.KeyOrders)
		l.Cache.Invalidate(services.KeyKitchen)

	case "table_updated":
		l.Cache.Invalidate(services.KeyTables)

	case "reservation_created":
		l.Cache.Invalidate(services.KeyReservations)
		var rv entity.Reservation
		if err := json.Unmarshal(msg.Payload, &rv); err == nil && rv.CustomerName != "" {
			l.Bridge.Emit(ctx, services.ReservationEvent{CustomerName: rv.CustomerName})
		}

	default:
		l.log.Debug("upstream message ignored", "type", msg.Type)
	}
}
