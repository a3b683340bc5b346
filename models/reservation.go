package models

import "time"

type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"type:VARCHAR(10);not null" json:"phone"`
	Date      string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time      string    `gorm:"not null" json:"time"` // HH:MM
	CreatedAt time.Time `json:"createdAt"`
}
