package models

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type RoomType struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"unique;size:100;not null" json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"basePrice"`
	Amenities   pq.StringArray  `gorm:"type:text[]" json:"amenities"`

	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
}
