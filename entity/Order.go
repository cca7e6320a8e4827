package entity

import "time"

// Order references its table by id, it does not own it. Deleting a table never
// cascades here.
type Order struct {
	ID         string `json:"id"`
	TableID    string `json:"tableId"`
	WaiterID   string `json:"waiterId,omitempty"`
	WaiterName string `json:"waiterName,omitempty"`

	Items  []OrderItem `json:"items"`
	Status OrderStatus `json:"status"`

	// Priority is optional; the kitchen projector derives urgency from elapsed
	// time when it is empty.
	Priority Priority `json:"priority,omitempty"`
	Notes    string   `json:"notes,omitempty"`

	Subtotal       float64 `json:"subtotal"`
	DiscountID     string  `json:"discountId,omitempty"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	TotalAmount    float64 `json:"totalAmount"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Recalculate recomputes subtotal and total from the captured item prices.
// Item prices are never re-derived from the current menu.
func (o *Order) Recalculate() {
	var subtotal float64
	for _, it := range o.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	o.Subtotal = subtotal
	o.TotalAmount = subtotal - o.DiscountAmount
	if o.TotalAmount < 0 {
		o.TotalAmount = 0
	}
}
