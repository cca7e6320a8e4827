package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/repository"
)

type captureSink struct {
	mu   sync.Mutex
	envs []Envelope
}

func (s *captureSink) Publish(env Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envs = append(s.envs, env)
}

func (s *captureSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.envs))
	for i, e := range s.envs {
		out[i] = e.Type
	}
	return out
}

func newPaymentEnv(t *testing.T) (*env, *PaymentService, *captureSink) {
	e := newEnv(t)
	api := e.store.client()
	sink := &captureSink{}
	bridge := NewNotificationBridge(e.cache, repository.NewNotificationRepository(api), sink, discardLogger())
	discounts := NewDiscountService(e.cache, repository.NewDiscountRepository(api))
	payments := NewPaymentService(e.cache, repository.NewPaymentRepository(api), e.orders, discounts, bridge, discardLogger())
	return e, payments, sink
}

func TestProcessPaymentRequiresServedOrder(t *testing.T) {
	e, payments, _ := newPaymentEnv(t)
	seedOrder(e, "o1", "t1", entity.OrderReady)

	_, err := payments.Process(context.Background(), ProcessPaymentReq{OrderID: "o1", Method: entity.PaymentCash})

	var inv *InvalidStateError
	if !errors.As(err, &inv) {
		t.Fatalf("want InvalidStateError, got %v", err)
	}
	if e.store.count("payments") != 0 {
		t.Error("payment recorded for unserved order")
	}
}

func TestProcessPaymentSettlesOrderAndReleasesTable(t *testing.T) {
	e, payments, sink := newPaymentEnv(t)
	seedTable(e, "t1", entity.TableOccupied)
	e.store.seed("orders", entity.Order{
		ID: "o1", TableID: "t1", Status: entity.OrderServed, TotalAmount: 180,
		Items: []entity.OrderItem{{MenuItemID: "m1", Quantity: 1, Price: 180}},
	})

	p, err := payments.Process(context.Background(), ProcessPaymentReq{OrderID: "o1", Method: entity.PaymentCard, Tip: 20})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if p.Amount != 180 || p.Tip != 20 || p.Status != entity.PaymentCompleted {
		t.Errorf("payment %+v", p)
	}

	if doc := e.store.doc("orders", "o1"); doc["status"] != "paid" {
		t.Errorf("order status = %v, want paid", doc["status"])
	}
	if doc := e.store.doc("tables", "t1"); doc["status"] != "available" {
		t.Errorf("table status = %v, want available", doc["status"])
	}

	types := sink.types()
	if len(types) != 1 || types[0] != "payment_completed" {
		t.Errorf("events = %v, want [payment_completed]", types)
	}
}

func TestProcessPaymentRedeemsAppliedDiscountOnce(t *testing.T) {
	e, payments, _ := newPaymentEnv(t)
	seedTable(e, "t1", entity.TableOccupied)
	e.store.seed("discounts", entity.Discount{
		ID: "d1", Code: "X", Type: entity.DiscountPercentage, Value: 10, IsActive: true,
		StartDate: time.Now().Add(-time.Hour), EndDate: time.Now().Add(time.Hour),
	})
	e.store.seed("orders", entity.Order{
		ID: "o1", TableID: "t1", Status: entity.OrderServed,
		DiscountID: "d1", DiscountAmount: 20, TotalAmount: 180,
	})

	if _, err := payments.Process(context.Background(), ProcessPaymentReq{OrderID: "o1", Method: entity.PaymentCash}); err != nil {
		t.Fatalf("process: %v", err)
	}
	if doc := e.store.doc("discounts", "d1"); doc["usedCount"] != float64(1) {
		t.Errorf("usedCount = %v, want 1", doc["usedCount"])
	}
}

func TestProcessPaymentRejectsBadInput(t *testing.T) {
	_, payments, _ := newPaymentEnv(t)

	var val *ValidationError
	_, err := payments.Process(context.Background(), ProcessPaymentReq{OrderID: "o1", Method: "crypto"})
	if !errors.As(err, &val) {
		t.Fatalf("bad method: want ValidationError, got %v", err)
	}
	_, err = payments.Process(context.Background(), ProcessPaymentReq{OrderID: "o1", Method: entity.PaymentCash, Tip: -5})
	if !errors.As(err, &val) {
		t.Fatalf("negative tip: want ValidationError, got %v", err)
	}
}

func TestRefundTracksPartialThenFull(t *testing.T) {
	e, payments, _ := newPaymentEnv(t)
	e.store.seed("payments", entity.Payment{
		ID: "p1", OrderID: "o1", Amount: 100, Method: entity.PaymentCard, Status: entity.PaymentCompleted,
	})

	p, err := payments.Refund(context.Background(), "p1", 40)
	if err != nil {
		t.Fatalf("partial refund: %v", err)
	}
	if p.Status != entity.PaymentPartialRefund || p.RefundedAmount != 40 {
		t.Fatalf("after partial: %+v", p)
	}

	p, err = payments.Refund(context.Background(), "p1", 60)
	if err != nil {
		t.Fatalf("final refund: %v", err)
	}
	if p.Status != entity.PaymentRefunded || p.RefundedAmount != 100 {
		t.Fatalf("after full: %+v", p)
	}

	// refunding an already refunded payment is a no-op
	p, err = payments.Refund(context.Background(), "p1", 1)
	if err != nil {
		t.Fatalf("re-refund: %v", err)
	}
	if p.RefundedAmount != 100 {
		t.Fatalf("refund moved past the amount: %+v", p)
	}
}

func TestRefundRejectsAmountPastBalance(t *testing.T) {
	e, payments, _ := newPaymentEnv(t)
	e.store.seed("payments", entity.Payment{
		ID: "p1", OrderID: "o1", Amount: 100, Method: entity.PaymentCash, Status: entity.PaymentCompleted,
	})

	var val *ValidationError
	if _, err := payments.Refund(context.Background(), "p1", 120); !errors.As(err, &val) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
