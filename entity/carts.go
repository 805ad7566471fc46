package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index:idx_cart_user_tenant,unique"`
	User   User `json:"-"`

	TenantID uint   `json:"tenantId" gorm:"index:idx_cart_user_tenant,unique"`
	Tenant   Tenant `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
