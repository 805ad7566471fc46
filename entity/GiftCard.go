package entity

import (
	"time"

	"gorm.io/gorm"
)

type GiftCard struct {
	gorm.Model
	Code string `gorm:"size:40;uniqueIndex;not null" json:"code"`

	InitialBalance int64 `json:"initialBalance"`
	Balance        int64 `json:"balance"`

	Active    bool       `gorm:"default:true" json:"active"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	TenantID uint   `gorm:"index" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
