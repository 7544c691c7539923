package models

import "time"

type OrderStatus string

const (
	// paid is the initial status written at checkout. The admin console
	// moves orders between unshipped/shipped and into delivered.
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusUnshipped OrderStatus = "unshipped"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	// Capitalised to stay byte-compatible with the records the admin
	// console string-matches on.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// BillingDetails is copied into the order at creation. Profile edits after
// checkout must not rewrite historical orders, so there is no reference back
// to the user row.
type BillingDetails struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company,omitempty"`
	Country    string `json:"country"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pin        string `json:"pin"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	OrderNotes string `json:"order_notes,omitempty"`
}

// Order is created exactly once, after payment verification. Everything
// except Status is immutable from then on.
type Order struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Ref            string         `gorm:"uniqueIndex" json:"ref"`
	CustomerEmail  string         `gorm:"index;not null" json:"customer_email"`
	CustomerPhone  string         `json:"customer_phone"`
	Billing        BillingDetails `gorm:"embedded;embeddedPrefix:billing_" json:"billing_details"`
	Items          []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       float64        `json:"subtotal"`
	ShippingCost   float64        `json:"shipping_cost"`
	TotalPrice     float64        `json:"total_price"`
	PaymentID      string         `json:"payment_id"`
	GatewayOrderID string         `json:"gateway_order_id"`
	Status         OrderStatus    `gorm:"type:VARCHAR(20);default:'paid'" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

type OrderItem struct {
	ID                 uint `gorm:"primaryKey" json:"-"`
	OrderID            uint `gorm:"index" json:"-"`
	ProductID          uint `json:"product_id"`
	ProductName        string `json:"name"`
	ProductImage       string `json:"image"`
	ProductCategory    string `json:"category,omitempty"`
	ProductSubCategory string `json:"sub_category,omitempty"`
	UnitPrice          float64 `json:"unit_price"`
	Quantity           int     `json:"quantity"`
}
