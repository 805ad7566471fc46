package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderTypeDelivery   = "delivery"
	OrderTypeCollection = "collection"
	OrderTypeAdvance    = "advance"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	OrderType   string `gorm:"size:20;not null" json:"orderType"`
	Status      string `gorm:"size:20;not null;default:pending" json:"status"`

	ScheduledAt *time.Time `json:"scheduledAt,omitempty"` // advance orders only

	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	Postcode     string `json:"postcode"`

	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"` // subtotal + tax + deliveryFee - discount

	VoucherID   *uint  `json:"voucherId,omitempty"`
	VoucherCode string `json:"voucherCode,omitempty"`

	// credit taken off a gift card at placement; the payment row carries
	// total - giftCardCredit
	GiftCardCode   string `gorm:"size:40" json:"giftCardCode,omitempty"`
	GiftCardCredit int64  `json:"giftCardCredit,omitempty"`

	PaymentMethod string `gorm:"size:20" json:"paymentMethod"` // card | cash

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for detail

	TenantID uint   `json:"tenantId"`
	Tenant   Tenant `json:"-"`

	Items   []OrderItem `json:"-"` // preload for detail only
	Payment *Payment    `json:"-"`
}
