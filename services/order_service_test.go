package services

import (
	"testing"

	"orderweb/entity"
	"orderweb/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderFixture struct {
	db     *gorm.DB
	tenant *entity.Tenant
	owner  *entity.User
	svc    *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := newTestDB(t)

	owner := &entity.User{Email: "owner@example.com", Password: "x", Role: "owner"}
	require.NoError(t, db.Create(owner).Error)
	tenant := seedTenant(t, db)
	require.NoError(t, db.Model(tenant).Update("owner_id", owner.ID).Error)
	tenant.OwnerID = owner.ID

	return &orderFixture{
		db: db, tenant: tenant, owner: owner,
		svc: NewOrderService(db, repository.NewOrderRepository(db), repository.NewTenantRepository(db), nil),
	}
}

func (f *orderFixture) newOrder(t *testing.T, number, status string) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber: number, OrderType: entity.OrderTypeCollection,
		Status: status, Total: 2760, TenantID: f.tenant.ID, UserID: 99,
	}
	require.NoError(t, f.db.Create(o).Error)
	return o
}

func (f *orderFixture) status(t *testing.T, id uint) string {
	t.Helper()
	var o entity.Order
	require.NoError(t, f.db.First(&o, id).Error)
	return o.Status
}

func TestSetStatusPipeline(t *testing.T) {
	f := newOrderFixture(t)
	o := f.newOrder(t, "OW-AAAA0001", entity.OrderStatusPending)

	for _, next := range []string{
		entity.OrderStatusAccepted,
		entity.OrderStatusReady,
		entity.OrderStatusCompleted,
	} {
		require.NoError(t, f.svc.SetStatus(f.owner.ID, "owner", f.tenant.ID, o.ID, next))
		assert.Equal(t, next, f.status(t, o.ID))
	}
}

func TestSetStatusRejectsSkippedSteps(t *testing.T) {
	f := newOrderFixture(t)
	o := f.newOrder(t, "OW-AAAA0002", entity.OrderStatusPending)

	err := f.svc.SetStatus(f.owner.ID, "owner", f.tenant.ID, o.ID, entity.OrderStatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, entity.OrderStatusPending, f.status(t, o.ID))
}

func TestSetStatusCancelWindow(t *testing.T) {
	f := newOrderFixture(t)

	pending := f.newOrder(t, "OW-AAAA0003", entity.OrderStatusPending)
	require.NoError(t, f.svc.SetStatus(f.owner.ID, "owner", f.tenant.ID, pending.ID, entity.OrderStatusCancelled))

	accepted := f.newOrder(t, "OW-AAAA0004", entity.OrderStatusAccepted)
	require.NoError(t, f.svc.SetStatus(f.owner.ID, "owner", f.tenant.ID, accepted.ID, entity.OrderStatusCancelled))

	ready := f.newOrder(t, "OW-AAAA0005", entity.OrderStatusReady)
	err := f.svc.SetStatus(f.owner.ID, "owner", f.tenant.ID, ready.ID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatusOwnershipGate(t *testing.T) {
	f := newOrderFixture(t)
	o := f.newOrder(t, "OW-AAAA0006", entity.OrderStatusPending)

	stranger := &entity.User{Email: "other@example.com", Password: "x", Role: "owner"}
	require.NoError(t, f.db.Create(stranger).Error)

	err := f.svc.SetStatus(stranger.ID, "owner", f.tenant.ID, o.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	// admins manage any tenant
	require.NoError(t, f.svc.SetStatus(stranger.ID, "admin", f.tenant.ID, o.ID, entity.OrderStatusAccepted))
}

func TestListForTenantFiltersByStatus(t *testing.T) {
	f := newOrderFixture(t)
	f.newOrder(t, "OW-AAAA0007", entity.OrderStatusPending)
	f.newOrder(t, "OW-AAAA0008", entity.OrderStatusCompleted)

	out, err := f.svc.ListForTenant(f.owner.ID, "owner", f.tenant.ID, entity.OrderStatusPending, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "OW-AAAA0007", out.Items[0].OrderNumber)

	out, err = f.svc.ListForTenant(f.owner.ID, "owner", f.tenant.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
}
