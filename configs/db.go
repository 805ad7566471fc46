package configs

import (
	"orderweb/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.Tenant{},
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.Addon{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemAddon{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddon{}, &entity.Payment{},
		&entity.Voucher{}, &entity.DeliveryZone{}, &entity.GiftCard{},
		&entity.OpeningHour{},
		&entity.EmailSetting{}, &entity.BrandingSetting{}, &entity.GatewaySetting{},
	)
}
