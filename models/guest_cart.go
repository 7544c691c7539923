package models

import "time"

// GuestCart is the device-local cart tier for unauthenticated visitors.
// The merge on login is the only code path that moves lines from here
// into a user cart.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey"`
	GuestID   string          `gorm:"uniqueIndex"`                                   // Enforces ONE cart per guest
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GuestCartItem struct {
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
