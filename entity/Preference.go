package entity

import "gorm.io/gorm"

// Preference is the persisted application configuration, loaded once at
// startup and saved on every change. A single row holds the whole object.
type Preference struct {
	gorm.Model
	Theme              string `gorm:"size:20;default:light" json:"theme"`
	Language           string `gorm:"size:5;default:tr" json:"language"`
	SoundEnabled       bool   `gorm:"default:true" json:"soundEnabled"`
	NotificationSound  string `gorm:"size:20;default:default" json:"notificationSound"`
	KitchenAutoRefresh bool   `gorm:"default:true" json:"kitchenAutoRefresh"`

	// KitchenRefreshMS is the kitchen display poll interval in milliseconds.
	KitchenRefreshMS int `gorm:"default:10000" json:"kitchenRefreshInterval"`
}
