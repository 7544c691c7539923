package models

import "time"

// GuestUser anchors the guest cart tier. A fresh guest id is issued whenever
// a device has no session, so a logged-out device never inherits the cart of
// the identity that just vacated it.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
