package entity

import "time"

// Notification is the persisted form of a bridge event, kept only for the
// UI session's badge and panel.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
