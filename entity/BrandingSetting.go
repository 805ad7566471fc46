package entity

import (
	"gorm.io/gorm"
)

type BrandingSetting struct {
	gorm.Model
	DisplayName    string `json:"displayName"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `gorm:"size:7" json:"primaryColor"` // "#rrggbb"
	SecondaryColor string `gorm:"size:7" json:"secondaryColor"`
	Tagline        string `json:"tagline"`

	TenantID uint   `gorm:"uniqueIndex" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
