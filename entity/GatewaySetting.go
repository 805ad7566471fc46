package entity

import (
	"gorm.io/gorm"
)

// GatewaySetting holds per-tenant card gateway configuration. Dispatch picks
// the first enabled gateway in the order stripe, globalpayments, worldpay.
type GatewaySetting struct {
	gorm.Model
	StripeEnabled  bool   `json:"stripeEnabled"`
	StripeEndpoint string `json:"stripeEndpoint"`
	StripeKey      string `json:"-"`

	GlobalPaymentsEnabled  bool   `json:"globalPaymentsEnabled"`
	GlobalPaymentsEndpoint string `json:"globalPaymentsEndpoint"`
	GlobalPaymentsKey      string `json:"-"`

	WorldpayEnabled  bool   `json:"worldpayEnabled"`
	WorldpayEndpoint string `json:"worldpayEndpoint"`
	WorldpayKey      string `json:"-"`

	TenantID uint   `gorm:"uniqueIndex" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
