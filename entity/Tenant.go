package entity

import (
	"gorm.io/gorm"
)

type Tenant struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Slug     string `gorm:"size:60;uniqueIndex;not null" json:"slug"`
	Currency string `gorm:"size:3;default:GBP" json:"currency"`

	// tax rate in basis points (2000 = 20%)
	TaxRateBP int64 `json:"taxRateBp"`

	DeliveryEnabled   bool `gorm:"default:true" json:"deliveryEnabled"`
	CollectionEnabled bool `gorm:"default:true" json:"collectionEnabled"`
	AdvanceEnabled    bool `gorm:"default:true" json:"advanceEnabled"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"` // preload only for account endpoints

	MenuCategories []MenuCategory `json:"-"`
	DeliveryZones  []DeliveryZone `json:"-"`
	Vouchers       []Voucher      `json:"-"`
	GiftCards      []GiftCard     `json:"-"`
	OpeningHours   []OpeningHour  `json:"-"`
	Orders         []Order        `json:"-"`

	EmailSetting   *EmailSetting    `json:"-"`
	Branding       *BrandingSetting `json:"-"`
	GatewaySetting *GatewaySetting  `json:"-"`
}
