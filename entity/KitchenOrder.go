package entity

import "time"

// KitchenOrder is the per-item preparation view of an order as stored under
// /kitchenOrders. It carries the same item sequence as the order it mirrors.
type KitchenOrder struct {
	ID          string      `json:"id"`
	OrderID     string      `json:"orderId"`
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	Priority    Priority    `json:"priority,omitempty"`
	Notes       string      `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// AllReady reports whether every item finished preparation.
func (k KitchenOrder) AllReady() bool {
	for _, it := range k.Items {
		if it.Status != ItemReady {
			return false
		}
	}
	return len(k.Items) > 0
}
