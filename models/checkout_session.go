package models

import "time"

const (
	CheckoutPending   = "pending"
	CheckoutCompleted = "completed"
)

// CheckoutSession is the server-side half of the payment handshake: written
// when a gateway order is created, completed when the signature verifies and
// the order is persisted. Abandoned hosted-UI sessions simply stay pending.
type CheckoutSession struct {
	ID             string                `gorm:"primaryKey" json:"id"`
	GatewayOrderID string                `gorm:"uniqueIndex" json:"gateway_order_id"`
	UserID         string                `gorm:"index" json:"user_id"`
	Email          string                `json:"email"`
	CartOwner      string                `json:"cart_owner"` // "user:<uid>" or "guest:<guest_id>" — the tier cleared on completion
	Billing        BillingDetails        `gorm:"embedded;embeddedPrefix:billing_" json:"billing_details"`
	Items          []CheckoutSessionItem `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       float64               `json:"subtotal"`
	ShippingCost   float64               `json:"shipping_cost"`
	TotalPrice     float64               `json:"total_price"`
	AmountMinor    int64                 `json:"amount_minor"`
	Currency       string                `json:"currency"`
	Status         string                `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
}

// CheckoutSessionItem freezes the cart lines that were priced when the
// gateway order was created. The order is built from these, never from the
// live cart, so edits during the hosted-UI window cannot desync the order
// from the amount charged.
type CheckoutSessionItem struct {
	ID                 uint   `gorm:"primaryKey" json:"-"`
	SessionID          string `gorm:"index" json:"-"`
	ProductID          uint   `json:"product_id"`
	ProductName        string `json:"name"`
	ProductImage       string `json:"image"`
	ProductCategory    string `json:"category,omitempty"`
	ProductSubCategory string `json:"sub_category,omitempty"`
	UnitPrice          float64 `json:"unit_price"`
	Quantity           int     `json:"quantity"`
}
