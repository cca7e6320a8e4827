package entity

// MenuItem price changes never touch already-captured order item prices.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"categoryId"`
	IsAvailable bool    `json:"isAvailable"`

	// PreparationTime is advisory, in minutes.
	PreparationTime int `json:"preparationTime,omitempty"`
}
