package entity

// OrderStatus is the coarse order lifecycle state. It is a coarser view than
// the per-item preparation statuses and is never inferred from them.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// Open reports whether the order still counts against its table's occupancy.
func (s OrderStatus) Open() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is legal.
func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderCancelled
}
