package cartControllers

import (
	"errors"
	"time"

	"github.com/Pavan17153/SS/models"
)

// ErrInsufficientStock is returned when an add or quantity change would push
// a line past the product's current stock. The cart is left unchanged and
// callers surface it as an inline warning, not a fatal error.
var ErrInsufficientStock = errors.New("insufficient stock")

// GuardQuantity re-checks stock at increment time. Best effort: the catalog
// is not locked, so this is a point-in-time comparison.
func GuardQuantity(prospective, stock int) error {
	if prospective > stock {
		return ErrInsufficientStock
	}
	return nil
}

// NewLine snapshots the product into a cart line. Price and image are frozen
// here; later catalog edits do not touch existing lines.
func NewLine(p models.Product, qty int, now time.Time) models.CartItem {
	return models.CartItem{
		ProductID:          p.ID,
		ProductName:        p.Name,
		ProductImage:       p.Image,
		ProductCategory:    p.Category,
		ProductSubCategory: p.SubCategory,
		ProductStock:       p.Stock,
		UnitPrice:          p.Price,
		Quantity:           qty,
		AddedAt:            now,
	}
}

// Accumulate adds qty to an existing line, subject to the stock guard.
// On ErrInsufficientStock the line is not modified.
func Accumulate(line *models.CartItem, qty, stock int, now time.Time) error {
	if err := GuardQuantity(line.Quantity+qty, stock); err != nil {
		return err
	}
	line.Quantity += qty
	line.ProductStock = stock
	line.AddedAt = now
	return nil
}

// GuestLine mirrors NewLine for the guest tier.
func GuestLine(p models.Product, qty int, now time.Time) models.GuestCartItem {
	return models.GuestCartItem{
		ProductID:          p.ID,
		ProductName:        p.Name,
		ProductImage:       p.Image,
		ProductCategory:    p.Category,
		ProductSubCategory: p.SubCategory,
		ProductStock:       p.Stock,
		UnitPrice:          p.Price,
		Quantity:           qty,
		AddedAt:            now,
	}
}

// GuestLines converts guest-tier lines to the common line type used by
// pricing and the merge on login.
func GuestLines(items []models.GuestCartItem) []models.CartItem {
	lines := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, models.CartItem{
			ProductID:          it.ProductID,
			ProductName:        it.ProductName,
			ProductImage:       it.ProductImage,
			ProductCategory:    it.ProductCategory,
			ProductSubCategory: it.ProductSubCategory,
			ProductStock:       it.ProductStock,
			UnitPrice:          it.UnitPrice,
			Quantity:           it.Quantity,
			AddedAt:            it.AddedAt,
		})
	}
	return lines
}
