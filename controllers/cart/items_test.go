package cartControllers

import (
	"testing"
	"time"

	"github.com/Pavan17153/SS/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine_SnapshotsProduct(t *testing.T) {
	now := time.Now()
	p := models.Product{
		ID:          42,
		Name:        "Linen Kurta",
		Price:       1299,
		Image:       "/uploads/products/kurta.jpg",
		Category:    "Men",
		SubCategory: "Kurtas",
		Stock:       9,
	}

	line := NewLine(p, 2, now)

	assert.Equal(t, uint(42), line.ProductID)
	assert.Equal(t, "Linen Kurta", line.ProductName)
	assert.Equal(t, 1299.0, line.UnitPrice)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, now, line.AddedAt)

	// A later catalog price change must not affect the snapshot
	p.Price = 1599
	assert.Equal(t, 1299.0, line.UnitPrice)
}

func TestAccumulate_StockGuard(t *testing.T) {
	now := time.Now()
	p := models.Product{ID: 1, Name: "Tee", Price: 499, Stock: 2}

	// First add succeeds
	require.NoError(t, GuardQuantity(1, p.Stock))
	line := NewLine(p, 1, now)

	// Second add succeeds
	require.NoError(t, Accumulate(&line, 1, p.Stock, now))
	assert.Equal(t, 2, line.Quantity)

	// Third add fails and leaves the line unchanged
	err := Accumulate(&line, 1, p.Stock, now)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, line.Quantity)
}

func TestGuardQuantity_BoundaryExact(t *testing.T) {
	assert.NoError(t, GuardQuantity(5, 5))
	assert.ErrorIs(t, GuardQuantity(6, 5), ErrInsufficientStock)
}

func TestGuestLines_PreservesOrderAndFields(t *testing.T) {
	items := []models.GuestCartItem{
		{ProductID: 3, ProductName: "Scarf", UnitPrice: 350, Quantity: 1},
		{ProductID: 1, ProductName: "Tee", UnitPrice: 499, Quantity: 2},
	}

	lines := GuestLines(items)
	require.Len(t, lines, 2)
	assert.Equal(t, uint(3), lines[0].ProductID)
	assert.Equal(t, uint(1), lines[1].ProductID)
	assert.Equal(t, 499.0, lines[1].UnitPrice)
	assert.Equal(t, 2, lines[1].Quantity)
}
