package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	InvoiceID uint            `gorm:"not null" json:"invoiceId"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method    string          `gorm:"size:50;not null" json:"method"`
	Reference string          `gorm:"size:100" json:"reference"`
	PaidAt    time.Time       `gorm:"autoCreateTime" json:"paidAt"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}
