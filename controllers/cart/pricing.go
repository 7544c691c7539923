package cartControllers

import "github.com/Pavan17153/SS/models"

// Flat-rate shipping ladder. Fixed business constants, inclusive upper
// bounds, rupees.
const (
	shippingTier1Limit = 1500
	shippingTier2Limit = 3000
	shippingTier3Limit = 4500

	shippingTier1 = 60
	shippingTier2 = 120
	shippingTier3 = 180
	shippingTier4 = 240
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Price computes subtotal, shipping and grand total for a set of lines.
// An empty cart ships for free because there is nothing to ship.
func Price(items []models.CartItem) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}

	var shipping float64
	if len(items) > 0 {
		switch {
		case subtotal <= shippingTier1Limit:
			shipping = shippingTier1
		case subtotal <= shippingTier2Limit:
			shipping = shippingTier2
		case subtotal <= shippingTier3Limit:
			shipping = shippingTier3
		default:
			shipping = shippingTier4
		}
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
