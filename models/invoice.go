package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ReservationID uint            `gorm:"not null" json:"reservationId"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Tax           decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"tax"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status        string          `gorm:"size:20;default:unpaid" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	Reservation Reservation `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`
	Payments    []Payment   `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}
