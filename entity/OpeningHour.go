package entity

import (
	"gorm.io/gorm"
)

// OpeningHour is one weekly window. Weekday follows time.Weekday (0 = Sunday).
type OpeningHour struct {
	gorm.Model
	Weekday int    `gorm:"not null" json:"weekday"`
	Opens   string `gorm:"size:5" json:"opens"`  // "HH:MM"
	Closes  string `gorm:"size:5" json:"closes"` // "HH:MM"
	Closed  bool   `json:"closed"`

	TenantID uint   `gorm:"index" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
