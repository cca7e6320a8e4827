package services

import (
	"time"

	"github.com/asliq/akilli-garson/entity"
)

// Event is the tagged union of everything the notification bridge can emit.
// Each kind carries exactly the fields its consumers need.
type Event interface {
	EventType() string
	Message() string
}

type NewOrderEvent struct {
	Order entity.Order
}

func (NewOrderEvent) EventType() string { return "new_order" }
func (e NewOrderEvent) Message() string {
	return "Yeni sipariş: Masa " + e.Order.TableID
}

type OrderStatusEvent struct {
	OrderID string
	TableID string
	From    entity.OrderStatus
	To      entity.OrderStatus
}

func (OrderStatusEvent) EventType() string { return "order_status" }
func (e OrderStatusEvent) Message() string {
	return "Sipariş durumu: " + statusText(e.To)
}

type TableEvent struct {
	TableID string
	Status  entity.TableStatus
}

func (TableEvent) EventType() string { return "table_status" }
func (e TableEvent) Message() string {
	return "Masa " + e.TableID + ": " + string(e.Status)
}

type PaymentEvent struct {
	OrderID string
	Amount  float64
}

func (PaymentEvent) EventType() string { return "payment_completed" }
func (e PaymentEvent) Message() string {
	return "Ödeme alındı"
}

type StockAlertEvent struct {
	ItemName string
}

func (StockAlertEvent) EventType() string { return "stock_alert" }
func (e StockAlertEvent) Message() string {
	return "Düşük stok: " + e.ItemName
}

type ReservationEvent struct {
	CustomerName string
}

func (ReservationEvent) EventType() string { return "new_reservation" }
func (e ReservationEvent) Message() string {
	return "Yeni rezervasyon: " + e.CustomerName
}

// Envelope is the JSON form of an event on the websocket feed.
type Envelope struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

func Envelop(ev Event) Envelope {
	return Envelope{Type: ev.EventType(), Message: ev.Message(), Payload: ev, At: time.Now()}
}

func statusText(s entity.OrderStatus) string {
	switch s {
	case entity.OrderPending:
		return "Beklemede"
	case entity.OrderPreparing:
		return "Hazırlanıyor"
	case entity.OrderReady:
		return "Hazır"
	case entity.OrderServed:
		return "Servis Edildi"
	case entity.OrderPaid:
		return "Ödendi"
	case entity.OrderCancelled:
		return "İptal"
	}
	return string(s)
}
