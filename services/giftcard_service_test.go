package services

import (
	"testing"
	"time"

	"orderweb/entity"
	"orderweb/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGiftCardFixture(t *testing.T) (*GiftCardService, *entity.Tenant, *gorm.DB) {
	db := newTestDB(t)
	tenant := seedTenant(t, db)
	return NewGiftCardService(db, repository.NewGiftCardRepository(db)), tenant, db
}

func TestIssueGiftCard(t *testing.T) {
	svc, tenant, _ := newGiftCardFixture(t)

	g, err := svc.Issue(tenant.ID, &IssueGiftCardIn{InitialBalance: 5000})
	require.NoError(t, err)
	assert.Regexp(t, `^GC-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`, g.Code)
	assert.Equal(t, int64(5000), g.Balance)
	assert.True(t, g.Active)
}

func TestApplyDeductsWithGuard(t *testing.T) {
	svc, tenant, db := newGiftCardFixture(t)
	g, err := svc.Issue(tenant.ID, &IssueGiftCardIn{InitialBalance: 1000})
	require.NoError(t, err)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.Apply(tx, g.ID, 600)
	}))

	var reloaded entity.GiftCard
	require.NoError(t, db.First(&reloaded, g.ID).Error)
	assert.Equal(t, int64(400), reloaded.Balance)

	// overdraw loses the guarded update and rolls back
	err = db.Transaction(func(tx *gorm.DB) error {
		return svc.Apply(tx, g.ID, 500)
	})
	assert.ErrorIs(t, err, ErrGiftCardEmpty)
	require.NoError(t, db.First(&reloaded, g.ID).Error)
	assert.Equal(t, int64(400), reloaded.Balance)
}

func TestCheckGiftCardStates(t *testing.T) {
	svc, tenant, db := newGiftCardFixture(t)
	past := time.Now().Add(-time.Hour)

	cards := []entity.GiftCard{
		{TenantID: tenant.ID, Code: "GC-DEAD-0000-0000", Balance: 500, Active: false},
		{TenantID: tenant.ID, Code: "GC-OLDD-0000-0000", Balance: 500, Active: true, ExpiresAt: &past},
		{TenantID: tenant.ID, Code: "GC-ZERO-0000-0000", Balance: 0, Active: true},
	}
	require.NoError(t, db.Create(&cards).Error)

	_, err := svc.Check(tenant.ID, "GC-MISS-0000-0000")
	assert.ErrorIs(t, err, ErrGiftCardNotFound)
	_, err = svc.Check(tenant.ID, "GC-DEAD-0000-0000")
	assert.ErrorIs(t, err, ErrGiftCardInactive)
	_, err = svc.Check(tenant.ID, "GC-OLDD-0000-0000")
	assert.ErrorIs(t, err, ErrGiftCardExpired)
	_, err = svc.Check(tenant.ID, "GC-ZERO-0000-0000")
	assert.ErrorIs(t, err, ErrGiftCardEmpty)
}

func TestDeactivateGiftCard(t *testing.T) {
	svc, tenant, _ := newGiftCardFixture(t)
	g, err := svc.Issue(tenant.ID, &IssueGiftCardIn{InitialBalance: 1000})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(tenant.ID, g.ID))
	_, err = svc.Check(tenant.ID, g.Code)
	assert.ErrorIs(t, err, ErrGiftCardInactive)
}
