package models

import "time"

type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null" json:"email"`
	Phone     string `json:"phone"`
	Name      string `json:"name"`
	Picture   string `json:"picture"`
	Provider  string `json:"provider"` // "google" for interactive logins, "checkout" when silently provisioned
	Cart      Cart   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt time.Time
}
