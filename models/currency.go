package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Currency struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Code    string          `gorm:"uniqueIndex;not null;type:varchar(3)"`
	Name    string          `gorm:"not null"`
	Symbol  string          `gorm:"type:varchar(5)"`
	Rate    decimal.Decimal `gorm:"type:decimal(12,4);default:1"` // vs base currency
	Enabled bool            `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
