package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Position int    `json:"position"`

	TenantID uint   `json:"tenantId"`
	Tenant   Tenant `json:"-"`

	Items []MenuItem `json:"items"`
}
