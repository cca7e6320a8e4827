package entity

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount amounts are computed at checkout time; applying one never mutates
// the entity. UsedCount is incremented only by the explicit redeem step.
type Discount struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Type      DiscountType `json:"type"`
	Value     float64      `json:"value"`
	MinAmount float64      `json:"minAmount"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	IsActive  bool         `json:"isActive"`
	UsedCount int          `json:"usedCount"`
}
