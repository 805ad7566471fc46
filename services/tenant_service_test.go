package services

import (
	"testing"

	"orderweb/entity"
	"orderweb/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTenantSvc(t *testing.T) (*TenantService, *gorm.DB) {
	db := newTestDB(t)
	return NewTenantService(db, repository.NewTenantRepository(db), repository.NewUserRepository(db)), db
}

func TestCreateTenantProvisionsEverything(t *testing.T) {
	svc, db := newTenantSvc(t)

	tenant, err := svc.Create(&CreateTenantIn{
		Name: "Bella Pizza", Slug: "Bella-Pizza", TaxRateBP: 2000,
		OwnerEmail: "Owner@Bella.example", OwnerPassword: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "bella-pizza", tenant.Slug)
	assert.Equal(t, "GBP", tenant.Currency, "currency defaults to GBP")

	var owner entity.User
	require.NoError(t, db.First(&owner, tenant.OwnerID).Error)
	assert.Equal(t, "owner@bella.example", owner.Email)
	assert.Equal(t, "owner", owner.Role)
	assert.NotEqual(t, "supersecret", owner.Password)

	var email entity.EmailSetting
	assert.NoError(t, db.Where("tenant_id = ?", tenant.ID).First(&email).Error)
	var branding entity.BrandingSetting
	assert.NoError(t, db.Where("tenant_id = ?", tenant.ID).First(&branding).Error)
	var gw entity.GatewaySetting
	assert.NoError(t, db.Where("tenant_id = ?", tenant.ID).First(&gw).Error)
}

func TestCreateTenantRejectsDuplicates(t *testing.T) {
	svc, _ := newTenantSvc(t)

	in := &CreateTenantIn{
		Name: "Bella Pizza", Slug: "bella",
		OwnerEmail: "owner@bella.example", OwnerPassword: "supersecret",
	}
	_, err := svc.Create(in)
	require.NoError(t, err)

	_, err = svc.Create(in)
	assert.Error(t, err, "slug is taken")

	in.Slug = "bella-2"
	_, err = svc.Create(in)
	assert.Error(t, err, "owner email is taken")
}

func TestUpdateTenantPartial(t *testing.T) {
	svc, db := newTenantSvc(t)
	tenant, err := svc.Create(&CreateTenantIn{
		Name: "Bella Pizza", Slug: "bella",
		OwnerEmail: "owner@bella.example", OwnerPassword: "supersecret",
	})
	require.NoError(t, err)

	off := false
	require.NoError(t, svc.Update(tenant.ID, &UpdateTenantIn{DeliveryEnabled: &off}))

	var reloaded entity.Tenant
	require.NoError(t, db.First(&reloaded, tenant.ID).Error)
	assert.False(t, reloaded.DeliveryEnabled)
	assert.Equal(t, "Bella Pizza", reloaded.Name, "untouched fields survive")
}
