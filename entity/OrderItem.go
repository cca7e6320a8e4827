package entity

import "time"

// OrderItem is owned by its order; it has no identity outside of it. Price is
// the unit price captured when the item was added.
type OrderItem struct {
	MenuItemID string     `json:"menuItemId"`
	Name       string     `json:"name,omitempty"`
	Quantity   int        `json:"quantity"`
	Price      float64    `json:"price"`
	Status     ItemStatus `json:"status"`
	Notes      string     `json:"notes,omitempty"`

	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
