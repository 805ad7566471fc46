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

func newVoucherFixture(t *testing.T) (*VoucherService, *entity.Tenant, *gorm.DB) {
	db := newTestDB(t)
	tenant := seedTenant(t, db)
	return NewVoucherService(repository.NewVoucherRepository(db)), tenant, db
}

func TestValidatePercentVoucher(t *testing.T) {
	svc, tenant, db := newVoucherFixture(t)
	require.NoError(t, db.Create(&entity.Voucher{
		TenantID: tenant.ID, Code: "SAVE10",
		DiscountType: entity.VoucherTypePercent, Value: 1000, // 10%
		Active: true,
	}).Error)

	v, discount, err := svc.Validate(tenant.ID, "save10", 5000)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", v.Code)
	assert.Equal(t, int64(500), discount)

	// validation has no side effects; same answer on repeat
	_, discount2, err := svc.Validate(tenant.ID, "SAVE10", 5000)
	require.NoError(t, err)
	assert.Equal(t, discount, discount2)
}

func TestValidateFixedVoucherClamped(t *testing.T) {
	svc, tenant, db := newVoucherFixture(t)
	require.NoError(t, db.Create(&entity.Voucher{
		TenantID: tenant.ID, Code: "FIVER",
		DiscountType: entity.VoucherTypeFixed, Value: 500,
		Active: true,
	}).Error)

	_, discount, err := svc.Validate(tenant.ID, "FIVER", 300)
	require.NoError(t, err)
	assert.Equal(t, int64(300), discount, "fixed discount never exceeds the subtotal")
}

func TestValidateRules(t *testing.T) {
	svc, tenant, db := newVoucherFixture(t)
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	vouchers := []entity.Voucher{
		{TenantID: tenant.ID, Code: "OFF", DiscountType: entity.VoucherTypeFixed, Value: 100, Active: false},
		{TenantID: tenant.ID, Code: "SOON", DiscountType: entity.VoucherTypeFixed, Value: 100, Active: true, StartAt: &future},
		{TenantID: tenant.ID, Code: "GONE", DiscountType: entity.VoucherTypeFixed, Value: 100, Active: true, EndAt: &past},
		{TenantID: tenant.ID, Code: "BIG", DiscountType: entity.VoucherTypeFixed, Value: 100, Active: true, MinOrder: 2000},
		{TenantID: tenant.ID, Code: "USED", DiscountType: entity.VoucherTypeFixed, Value: 100, Active: true, MaxUses: 3, UsedCount: 3},
	}
	require.NoError(t, db.Create(&vouchers).Error)

	cases := []struct {
		code string
		want error
	}{
		{"NOPE", ErrVoucherNotFound},
		{"OFF", ErrVoucherInactive},
		{"SOON", ErrVoucherNotYet},
		{"GONE", ErrVoucherExpired},
		{"BIG", ErrVoucherMinOrder},
		{"USED", ErrVoucherExhausted},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			_, _, err := svc.Validate(tenant.ID, tc.code, 1000)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVoucherScopedToTenant(t *testing.T) {
	svc, tenant, db := newVoucherFixture(t)
	require.NoError(t, db.Create(&entity.Voucher{
		TenantID: tenant.ID, Code: "SAVE10",
		DiscountType: entity.VoucherTypePercent, Value: 1000, Active: true,
	}).Error)

	_, _, err := svc.Validate(tenant.ID+1, "SAVE10", 5000)
	assert.ErrorIs(t, err, ErrVoucherNotFound)
}

func TestMarkUsedIncrementsAndStopsAtLimit(t *testing.T) {
	svc, tenant, db := newVoucherFixture(t)
	v := entity.Voucher{
		TenantID: tenant.ID, Code: "LAST",
		DiscountType: entity.VoucherTypeFixed, Value: 100,
		Active: true, MaxUses: 1,
	}
	require.NoError(t, db.Create(&v).Error)

	svc.MarkUsed(tenant.ID, v.ID)

	var reloaded entity.Voucher
	require.NoError(t, db.First(&reloaded, v.ID).Error)
	assert.Equal(t, int64(1), reloaded.UsedCount)

	_, _, err := svc.Validate(tenant.ID, "LAST", 1000)
	assert.ErrorIs(t, err, ErrVoucherExhausted)
}

func TestCreateVoucherRejectsOver100Percent(t *testing.T) {
	svc, tenant, _ := newVoucherFixture(t)
	_, err := svc.Create(tenant.ID, &VoucherIn{
		Code: "ALL", DiscountType: entity.VoucherTypePercent, Value: 10001,
	})
	assert.Error(t, err)
}
