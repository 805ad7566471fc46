package services

import (
	"orderweb/entity"
)

// Totals is the money breakdown of one checkout attempt. All values are
// minor units and Total = Subtotal + Tax + DeliveryFee - Discount, never
// negative.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// LineTotal prices one cart line: (unit price + addons) x qty.
func LineTotal(unitPrice int64, addons []entity.CartItemAddon, qty int) int64 {
	unit := unitPrice
	for _, a := range addons {
		unit += a.Price
	}
	return unit * int64(qty)
}

// CartSubtotal sums the snapshot totals already stored on the lines.
func CartSubtotal(items []entity.CartItem) int64 {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Total
	}
	return subtotal
}

// Tax applies a basis-point rate, rounding down.
func Tax(subtotal, rateBP int64) int64 {
	if subtotal <= 0 || rateBP <= 0 {
		return 0
	}
	return subtotal * rateBP / 10000
}

// ComputeTotals assembles the full breakdown. The discount is clamped so the
// grand total cannot go negative.
func ComputeTotals(subtotal, taxRateBP, deliveryFee, discount int64) Totals {
	t := Totals{
		Subtotal:    subtotal,
		Tax:         Tax(subtotal, taxRateBP),
		DeliveryFee: deliveryFee,
		Discount:    discount,
	}
	gross := t.Subtotal + t.Tax + t.DeliveryFee
	if t.Discount > gross {
		t.Discount = gross
	}
	t.Total = gross - t.Discount
	return t
}
