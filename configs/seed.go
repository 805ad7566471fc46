package configs

import (
	"orderweb/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the platform admin account once.
func SeedAdmin() error {
	var cnt int64
	if err := db.Model(&entity.User{}).Where("role = ?", "admin").Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(MustGetEnv("ADMIN_PASSWORD")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     MustGetEnv("ADMIN_EMAIL"),
		Password:  string(hashed),
		FirstName: "Platform",
		LastName:  "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemoTenant provisions a demo restaurant for local development.
func SeedDemoTenant() error {
	var cnt int64
	if err := db.Model(&entity.Tenant{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("owner1234"), bcrypt.DefaultCost)
	owner := entity.User{
		Email: "owner@demo.local", Password: string(hashed),
		FirstName: "Demo", LastName: "Owner", Role: "owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	t := entity.Tenant{
		Name: "Demo Kitchen", Slug: "demo-kitchen", Currency: "GBP",
		TaxRateBP: 2000, OwnerID: owner.ID,
	}
	if err := db.Create(&t).Error; err != nil {
		return err
	}

	rows := []any{
		&entity.BrandingSetting{TenantID: t.ID, DisplayName: "Demo Kitchen", PrimaryColor: "#c0392b", SecondaryColor: "#2c3e50"},
		&entity.EmailSetting{TenantID: t.ID, SenderName: "Demo Kitchen", SenderEmail: "orders@demo.local", SendConfirmation: true},
		&entity.GatewaySetting{TenantID: t.ID},
		&entity.DeliveryZone{TenantID: t.ID, Name: "Local", Prefix: "SW1", Fee: 250, FreeAbove: 3000},
	}
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}

	// Mon-Sun 17:00-23:00
	for wd := 0; wd < 7; wd++ {
		h := entity.OpeningHour{TenantID: t.ID, Weekday: wd, Opens: "17:00", Closes: "23:00"}
		if err := db.Create(&h).Error; err != nil {
			return err
		}
	}

	cat := entity.MenuCategory{TenantID: t.ID, Name: "Mains", Position: 1}
	if err := db.Create(&cat).Error; err != nil {
		return err
	}
	item := entity.MenuItem{TenantID: t.ID, MenuCategoryID: cat.ID, Name: "Margherita", Price: 1000, Available: true}
	if err := db.Create(&item).Error; err != nil {
		return err
	}
	return db.Create(&entity.Addon{MenuItemID: item.ID, Name: "Extra cheese", Price: 150}).Error
}
