package entity

import (
	"gorm.io/gorm"
)

type EmailSetting struct {
	gorm.Model
	SenderName       string `json:"senderName"`
	SenderEmail      string `json:"senderEmail"`
	ReplyTo          string `json:"replyTo"`
	SendConfirmation bool   `gorm:"default:true" json:"sendConfirmation"`

	TenantID uint   `gorm:"uniqueIndex" json:"tenantId"`
	Tenant   Tenant `json:"-"`
}
