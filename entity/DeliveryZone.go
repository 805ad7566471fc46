package entity

import (
	"gorm.io/gorm"
)

// DeliveryZone maps a postcode prefix to a fee. The longest matching prefix
// wins when several zones overlap.
type DeliveryZone struct {
	gorm.Model
	Name   string `json:"name"`
	Prefix string `gorm:"size:10;not null" json:"prefix"` // normalized, no spaces, upper case

	Fee       int64 `json:"fee"`
	MinOrder  int64 `json:"minOrder"`  // 0 = no minimum
	FreeAbove int64 `json:"freeAbove"` // subtotal at which delivery is free, 0 = never

	TenantID uint   `gorm:"index" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
