package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey"`
	UserID    string     `gorm:"uniqueIndex"`                                   // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a snapshot of the product taken at add-to-cart time. Catalog
// edits after that point do not change lines already in a cart.
type CartItem struct {
	ID                 uint `gorm:"primaryKey"`
	CartID             uint `gorm:"index"`
	ProductID          uint `gorm:"index"`
	ProductName        string
	ProductImage       string
	ProductCategory    string
	ProductSubCategory string
	ProductStock       int
	UnitPrice          float64
	Quantity           int
	AddedAt            time.Time
}
