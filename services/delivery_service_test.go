package services

import (
	"testing"

	"orderweb/entity"
	"orderweb/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveryFixture(t *testing.T) (*DeliveryService, *entity.Tenant) {
	db := newTestDB(t)
	tenant := seedTenant(t, db)
	svc := NewDeliveryService(repository.NewZoneRepository(db))

	zones := []entity.DeliveryZone{
		{TenantID: tenant.ID, Name: "Central", Prefix: "SW1", Fee: 250, FreeAbove: 3000},
		{TenantID: tenant.ID, Name: "Victoria", Prefix: "SW1A", Fee: 150},
		{TenantID: tenant.ID, Name: "Outer", Prefix: "SE", Fee: 400, MinOrder: 1500},
	}
	require.NoError(t, db.Create(&zones).Error)
	return svc, tenant
}

func TestResolveLongestPrefixWins(t *testing.T) {
	svc, tenant := newDeliveryFixture(t)

	fee, err := svc.Resolve(tenant.ID, "SW1A 1AA", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(150), fee)

	fee, err = svc.Resolve(tenant.ID, "sw1w 9sr", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(250), fee)
}

func TestResolveFreeAboveThreshold(t *testing.T) {
	svc, tenant := newDeliveryFixture(t)

	fee, err := svc.Resolve(tenant.ID, "SW1W 9SR", 3000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fee)

	fee, err = svc.Resolve(tenant.ID, "SW1W 9SR", 2999)
	require.NoError(t, err)
	assert.Equal(t, int64(250), fee)
}

func TestResolveMinOrder(t *testing.T) {
	svc, tenant := newDeliveryFixture(t)

	_, err := svc.Resolve(tenant.ID, "SE1 7PB", 1000)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrOutsideZones)

	fee, err := svc.Resolve(tenant.ID, "SE1 7PB", 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(400), fee)
}

func TestResolveOutsideZones(t *testing.T) {
	svc, tenant := newDeliveryFixture(t)

	_, err := svc.Resolve(tenant.ID, "N1 9GU", 1000)
	assert.ErrorIs(t, err, ErrOutsideZones)
}

func TestResolveOtherTenantZonesInvisible(t *testing.T) {
	svc, tenant := newDeliveryFixture(t)

	_, err := svc.Resolve(tenant.ID+99, "SW1A 1AA", 1000)
	assert.ErrorIs(t, err, ErrOutsideZones)
}

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "SW1A1AA", NormalizePostcode(" sw1a 1aa "))
	assert.Equal(t, "", NormalizePostcode("   "))
}
