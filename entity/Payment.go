package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusCaptured = "captured"
	PaymentStatusFailed   = "failed"
)

type Payment struct {
	gorm.Model
	Amount int64  `json:"amount"`
	Method string `gorm:"size:20" json:"method"` // card | cash

	// card payments only
	Gateway       string `gorm:"size:30" json:"gateway,omitempty"`
	Reference     string `gorm:"size:64;index" json:"reference,omitempty"` // server-generated, sent to the gateway
	TransactionID string `gorm:"size:128" json:"transactionId,omitempty"`

	Status string     `gorm:"size:20;not null;default:pending" json:"status"`
	PaidAt *time.Time `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
