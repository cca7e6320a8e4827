package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

const paymentStale = time.Minute

type PaymentService struct {
	Cache     *cache.Store
	Repo      *repository.PaymentRepository
	Orders    *OrderService
	Discounts *DiscountService
	Bridge    *NotificationBridge
	log       *slog.Logger
}

func NewPaymentService(store *cache.Store, repo *repository.PaymentRepository, orders *OrderService, discounts *DiscountService, bridge *NotificationBridge, log *slog.Logger) *PaymentService {
	if log == nil {
		log = slog.Default()
	}
	return &PaymentService{Cache: store, Repo: repo, Orders: orders, Discounts: discounts, Bridge: bridge, log: log}
}

func (s *PaymentService) List(ctx context.Context) ([]entity.Payment, error) {
	v, err := s.Cache.Fetch(ctx, KeyPayments, paymentStale, func(ctx context.Context) (any, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Payment), nil
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	return s.Repo.ListByOrder(ctx, orderID)
}

type ProcessPaymentReq struct {
	OrderID string               `json:"orderId" binding:"required"`
	Method  entity.PaymentMethod `json:"method" binding:"required"`
	Tip     float64              `json:"tip"`
}

// Process settles a served order: it records the payment, moves the order to
// paid (which also releases an idle table) and burns the discount, if one was
// applied, exactly once.
func (s *PaymentService) Process(ctx context.Context, req ProcessPaymentReq) (*entity.Payment, error) {
	switch req.Method {
	case entity.PaymentCash, entity.PaymentCard:
	default:
		return nil, &ValidationError{Field: "method", Msg: "must be cash or card"}
	}
	if req.Tip < 0 {
		return nil, &ValidationError{Field: "tip", Msg: "cannot be negative"}
	}

	o, err := s.Orders.Repo.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderServed {
		return nil, &InvalidStateError{Op: "pay order", Current: string(o.Status)}
	}

	created, err := s.Repo.Create(ctx, &entity.Payment{
		OrderID:     o.ID,
		TableID:     o.TableID,
		Amount:      o.TotalAmount,
		Tip:         req.Tip,
		Method:      req.Method,
		Status:      entity.PaymentCompleted,
		ProcessedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.Orders.UpdateStatus(ctx, o.ID, entity.OrderPaid); err != nil {
		return nil, err
	}

	if o.DiscountID != "" {
		if err := s.Discounts.Redeem(ctx, o.DiscountID); err != nil {
			s.log.Warn("discount redeem failed", "discountId", o.DiscountID, "err", err)
		}
	}

	if s.Bridge != nil {
		s.Bridge.Emit(ctx, PaymentEvent{OrderID: o.ID, Amount: created.Amount})
	}

	s.Cache.Invalidate(KeyPayments)
	return created, nil
}

// Refund reverses a completed payment, fully or in part. Partial refunds keep
// the payment around with an accumulated refunded amount.
func (s *PaymentService) Refund(ctx context.Context, id string, amount float64) (*entity.Payment, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == entity.PaymentRefunded {
		return p, nil
	}
	if amount <= 0 || amount > p.Amount-p.RefundedAmount {
		return nil, &ValidationError{Field: "amount", Msg: "exceeds refundable balance"}
	}

	refunded := p.RefundedAmount + amount
	status := entity.PaymentPartialRefund
	if refunded >= p.Amount {
		status = entity.PaymentRefunded
	}
	updated, err := s.Repo.Patch(ctx, id, map[string]any{
		"status":         status,
		"refundedAmount": refunded,
	})
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(KeyPayments)
	return updated, nil
}
