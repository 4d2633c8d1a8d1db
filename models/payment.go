package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records are append-only; correcting a mistake means a new
// invoice, never editing a payment.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate time.Time       `gorm:"index;not null"`
	Method      string          `gorm:"type:varchar(20);not null"`
	Reference   string
	Notes       string

	CreatedAt time.Time
}
