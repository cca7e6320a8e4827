package entity

import "gorm.io/gorm"

// Waiter lives in the local store, not behind the REST boundary. PINs are
// stored bcrypt-hashed.
type Waiter struct {
	gorm.Model
	Code    string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Role    string `gorm:"size:20;default:waiter" json:"role"`
	PinHash string `gorm:"size:100;not null" json:"-"`
}
