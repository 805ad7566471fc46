package services

import (
	"testing"
	"time"

	"orderweb/entity"
	"orderweb/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardExcludesCancelled(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db)
	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))

	orders := []entity.Order{
		{OrderNumber: "OW-AN000001", OrderType: "collection", Status: entity.OrderStatusCompleted, Total: 2760, TenantID: tenant.ID},
		{OrderNumber: "OW-AN000002", OrderType: "delivery", Status: entity.OrderStatusPending, Total: 1240, TenantID: tenant.ID},
		{OrderNumber: "OW-AN000003", OrderType: "collection", Status: entity.OrderStatusCancelled, Total: 9999, TenantID: tenant.ID},
	}
	require.NoError(t, db.Create(&orders).Error)
	items := []entity.OrderItem{
		{OrderID: orders[0].ID, Name: "Margherita", Qty: 2, UnitPrice: 1150, Total: 2300},
		{OrderID: orders[1].ID, Name: "Pepperoni", Qty: 1, UnitPrice: 1200, Total: 1200},
		{OrderID: orders[2].ID, Name: "Margherita", Qty: 9, UnitPrice: 1000, Total: 9000},
	}
	require.NoError(t, db.Create(&items).Error)

	out, err := svc.Dashboard(tenant.ID, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Orders)
	assert.Equal(t, int64(4000), out.Revenue)
	assert.Equal(t, int64(2000), out.AvgOrderValue)

	require.NotEmpty(t, out.TopItems)
	assert.Equal(t, "Margherita", out.TopItems[0].Name)
	assert.Equal(t, int64(2), out.TopItems[0].Qty, "cancelled orders do not count")

	require.Len(t, out.Daily, 1)
	assert.Equal(t, int64(2), out.Daily[0].Orders)
	assert.Equal(t, int64(4000), out.Daily[0].Revenue)
}

func TestDashboardDefaultsToLast30Days(t *testing.T) {
	db := newTestDB(t)
	tenant := seedTenant(t, db)
	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))

	out, err := svc.Dashboard(tenant.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, out.Orders)
	assert.Zero(t, out.AvgOrderValue)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), out.From, time.Minute)
}
