package entity

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

type PaymentStatus string

const (
	PaymentCompleted     PaymentStatus = "completed"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentPartialRefund PaymentStatus = "partial_refund"
)

type Payment struct {
	ID             string        `json:"id"`
	OrderID        string        `json:"orderId"`
	TableID        string        `json:"tableId"`
	Amount         float64       `json:"amount"`
	Tip            float64       `json:"tip,omitempty"`
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	RefundedAmount float64       `json:"refundedAmount,omitempty"`
	ProcessedAt    time.Time     `json:"processedAt"`
}
