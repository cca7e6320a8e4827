package entity

type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Stock    float64 `json:"stock"`
	MinStock float64 `json:"minStock"`
	Unit     string  `json:"unit,omitempty"`
}

// Low reports whether the item is at or below its reorder threshold.
func (i InventoryItem) Low() bool { return i.Stock <= i.MinStock }
