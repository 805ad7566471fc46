package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	VoucherTypePercent = "percent"
	VoucherTypeFixed   = "fixed"
)

type Voucher struct {
	gorm.Model
	Code        string `gorm:"size:50;index:idx_voucher_tenant_code,unique;not null" json:"code"`
	Description string `json:"description"`

	// percent: Value in basis points (1000 = 10%); fixed: Value in minor units
	DiscountType string `gorm:"size:20;not null" json:"discountType"`
	Value        int64  `json:"value"`

	MinOrder  int64 `json:"minOrder"`
	MaxUses   int64 `json:"maxUses"` // 0 = unlimited
	UsedCount int64 `json:"usedCount"`

	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`
	Active  bool       `gorm:"default:true" json:"active"`

	TenantID uint   `gorm:"index:idx_voucher_tenant_code,unique" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
