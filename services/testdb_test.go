package services

import (
	"fmt"
	"strings"
	"testing"

	"orderweb/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory database so every connection in the pool
// sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Tenant{},
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.Addon{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemAddon{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddon{}, &entity.Payment{},
		&entity.Voucher{}, &entity.DeliveryZone{}, &entity.GiftCard{},
		&entity.OpeningHour{},
		&entity.EmailSetting{}, &entity.BrandingSetting{}, &entity.GatewaySetting{},
	))
	return db
}

func seedTenant(t *testing.T, db *gorm.DB) *entity.Tenant {
	t.Helper()
	tenant := &entity.Tenant{
		Name:              "Testaurant",
		Slug:              "testaurant",
		Currency:          "GBP",
		TaxRateBP:         2000,
		DeliveryEnabled:   true,
		CollectionEnabled: true,
		AdvanceEnabled:    true,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := &entity.User{Email: "customer@example.com", Password: "x", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}
