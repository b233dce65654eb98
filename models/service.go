package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service là dịch vụ khách sạn (giặt ủi, spa, đưa đón...)
type Service struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Type        string          `gorm:"size:50;not null" json:"type"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Status      string          `gorm:"size:20;default:active" json:"status"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
