package entity

import (
	"gorm.io/gorm"
)

type OrderItemAddon struct {
	gorm.Model
	OrderItemID uint `json:"orderItemId"`

	AddonID uint   `json:"addonId"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
}
