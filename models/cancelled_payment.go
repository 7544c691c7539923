package models

import "time"

// CancelledPayment is the archival record created when an admin acts on a
// Cancelled order. OrderID is the primary key, so archiving the same order
// twice cannot produce duplicate records.
type CancelledPayment struct {
	OrderID    uint      `gorm:"primaryKey" json:"order_id"`
	PaymentID  string    `json:"payment_id"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
