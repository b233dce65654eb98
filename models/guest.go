package models

import (
	"time"
)

type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;size:120;not null" json:"email"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Reservations []Reservation `gorm:"foreignKey:GuestID" json:"reservations,omitempty"`
}
