package models

import (
	"fmt"
	"time"

	"hms/constants"
)

type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Number     string    `gorm:"unique;size:20;not null" json:"number"`
	RoomTypeID uint      `gorm:"not null" json:"roomTypeId"`
	Status     string    `gorm:"size:20;default:available" json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	RoomType     RoomType      `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:RoomID" json:"reservations,omitempty"`
}

// ValidateStatus kiểm tra trạng thái phòng hợp lệ
func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusOccupied, constants.RoomStatusMaintenance:
		return nil
	}
	return fmt.Errorf("invalid room status: %q", r.Status)
}
