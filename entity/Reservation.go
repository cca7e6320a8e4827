package entity

import "time"

type Reservation struct {
	ID           string            `json:"id"`
	TableID      string            `json:"tableId"`
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone,omitempty"`
	Date         string            `json:"date"` // YYYY-MM-DD
	Time         string            `json:"time"` // HH:MM
	GuestCount   int               `json:"guestCount"`
	Status       ReservationStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}
