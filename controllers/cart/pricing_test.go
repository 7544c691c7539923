package cartControllers

import (
	"testing"

	"github.com/Pavan17153/SS/models"
	"github.com/stretchr/testify/assert"
)

func lineWithSubtotal(subtotal float64) []models.CartItem {
	return []models.CartItem{{ProductID: 1, UnitPrice: subtotal, Quantity: 1}}
}

func TestPrice_EmptyCartShipsFree(t *testing.T) {
	totals := Price(nil)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 0.0, totals.Total)
}

func TestPrice_ShippingTiers(t *testing.T) {
	cases := []struct {
		subtotal float64
		shipping float64
	}{
		{1, 60},
		{1500, 60},
		{1501, 120},
		{3000, 120},
		{3001, 180},
		{4500, 180},
		{4501, 240},
		{99999, 240},
	}

	for _, tc := range cases {
		totals := Price(lineWithSubtotal(tc.subtotal))
		assert.Equal(t, tc.shipping, totals.Shipping, "subtotal=%v", tc.subtotal)
	}
}

func TestPrice_TotalIsSubtotalPlusShipping(t *testing.T) {
	carts := [][]models.CartItem{
		nil,
		lineWithSubtotal(999),
		{
			{ProductID: 1, UnitPrice: 750, Quantity: 2},
			{ProductID: 2, UnitPrice: 120.5, Quantity: 3},
		},
		{
			{ProductID: 7, UnitPrice: 4999, Quantity: 1},
		},
	}

	for _, items := range carts {
		totals := Price(items)
		assert.Equal(t, totals.Subtotal+totals.Shipping, totals.Total)
	}
}

func TestPrice_MultiLineSubtotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, UnitPrice: 500, Quantity: 2}, // 1000
		{ProductID: 2, UnitPrice: 250, Quantity: 4}, // 1000
	}
	totals := Price(items)
	assert.Equal(t, 2000.0, totals.Subtotal)
	assert.Equal(t, 120.0, totals.Shipping)
	assert.Equal(t, 2120.0, totals.Total)
}
