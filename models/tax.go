package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tax struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name        string          `gorm:"not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(6,2);not null"` // percentage
	Description string
	Enabled     bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
