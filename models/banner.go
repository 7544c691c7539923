package models

import "time"

// Banner is a homepage hero image managed from the admin console.
type Banner struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	CreatedAt time.Time
}
