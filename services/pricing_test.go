package services

import (
	"testing"

	"orderweb/entity"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	addons := []entity.CartItemAddon{{Price: 150}}
	assert.Equal(t, int64(2300), LineTotal(1000, addons, 2))
	assert.Equal(t, int64(1000), LineTotal(1000, nil, 1))
	assert.Equal(t, int64(0), LineTotal(1000, nil, 0))
}

func TestCartSubtotal(t *testing.T) {
	items := []entity.CartItem{{Total: 2300}, {Total: 500}}
	assert.Equal(t, int64(2800), CartSubtotal(items))
	assert.Equal(t, int64(0), CartSubtotal(nil))
}

func TestTax(t *testing.T) {
	assert.Equal(t, int64(460), Tax(2300, 2000)) // 20%
	assert.Equal(t, int64(0), Tax(0, 2000))
	assert.Equal(t, int64(0), Tax(2300, 0))
	assert.Equal(t, int64(1), Tax(99, 125)) // rounds down
}

func TestComputeTotals(t *testing.T) {
	// pizza 1000 + cheese 150, twice, at 20% tax
	got := ComputeTotals(2300, 2000, 250, 0)
	assert.Equal(t, Totals{
		Subtotal:    2300,
		Tax:         460,
		DeliveryFee: 250,
		Discount:    0,
		Total:       3010,
	}, got)
}

func TestComputeTotalsClampsDiscount(t *testing.T) {
	got := ComputeTotals(1000, 0, 0, 5000)
	assert.Equal(t, int64(1000), got.Discount)
	assert.Equal(t, int64(0), got.Total)
}

func TestComputeTotalsEquation(t *testing.T) {
	for _, tc := range [][4]int64{
		{2300, 2000, 250, 500},
		{1, 2000, 0, 0},
		{0, 2000, 0, 0},
		{9999, 1250, 199, 9999},
	} {
		got := ComputeTotals(tc[0], tc[1], tc[2], tc[3])
		assert.Equal(t, got.Total, got.Subtotal+got.Tax+got.DeliveryFee-got.Discount)
		assert.GreaterOrEqual(t, got.Total, int64(0))
	}
}
