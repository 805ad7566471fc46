package entity

import (
	"gorm.io/gorm"
)

type CartItemAddon struct {
	gorm.Model
	CartItemID uint `json:"cartItemId"`

	AddonID uint  `json:"addonId"`
	Addon   Addon `json:"-"`

	Name  string `json:"name"`  // snapshot
	Price int64  `json:"price"` // snapshot
}
