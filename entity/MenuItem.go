package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor units
	Available   bool   `gorm:"default:true" json:"available"`

	TenantID uint `json:"tenantId"`

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"`

	Addons []Addon `json:"addons"`
}
