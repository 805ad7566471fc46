package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // item price + addons, snapshot at add time
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	// sorted addon ids, used to merge identical lines
	AddonKey string `gorm:"size:255" json:"-"`

	Addons []CartItemAddon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addons"`
}
