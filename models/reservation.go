package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reservation struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	GuestID         uint            `gorm:"not null" json:"guestId"`
	RoomTypeID      uint            `gorm:"not null" json:"roomTypeId"`
	RoomID          *uint           `json:"roomId"` // gán khi check-in
	CheckIn         time.Time       `gorm:"type:date;not null" json:"checkIn"`
	CheckOut        time.Time       `gorm:"type:date;not null" json:"checkOut"`
	NumGuests       int             `gorm:"not null" json:"numGuests"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalPrice"`
	Status          string          `gorm:"size:20;default:confirmed" json:"status"`
	SpecialRequests string          `json:"specialRequests"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	CreatedBy       uint            `json:"createdBy"`
	UpdatedBy       uint            `json:"updatedBy"`

	Guest    Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Room     *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	Invoices []Invoice `gorm:"foreignKey:ReservationID" json:"invoices,omitempty"`
}
