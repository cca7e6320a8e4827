package entity

type Table struct {
	ID       string      `json:"id"`
	Number   int         `json:"number"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
	Location string      `json:"location,omitempty"`
}
