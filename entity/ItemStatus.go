package entity

// ItemStatus is the kitchen-side preparation state of a single order item,
// updated independently of the order's own status.
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemPreparing ItemStatus = "preparing"
	ItemReady     ItemStatus = "ready"
)
