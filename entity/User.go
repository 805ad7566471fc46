package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Postcode    string `json:"postcode"`
	Role        string `gorm:"not null;default:customer" json:"role"` // customer | owner | admin

	TenantsOwned []Tenant `gorm:"foreignKey:OwnerID" json:"-"`
	Orders       []Order  `json:"-"`
}
