package entity

import (
	"gorm.io/gorm"
)

// Addon is reference data attached to a menu item (extra cheese, dips, ...).
type Addon struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Price int64  `json:"price"` // minor units

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
