package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	InvoiceNumber string    `gorm:"uniqueIndex;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CurrencyID    uuid.UUID `gorm:"type:uuid;not null"`
	InvoiceDate   time.Time `gorm:"index;not null"`
	DueDate       time.Time `gorm:"index;not null"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2);default:0.0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0.0"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(12,2);default:0.0"`

	Status string `gorm:"type:varchar(20);default:'DRAFT';index"`
	Notes  string
	Terms  string

	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID"`
	Customer Customer      `gorm:"foreignKey:CustomerID"`
	Currency Currency      `gorm:"foreignKey:CurrencyID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxID       *uuid.UUID      `gorm:"type:uuid;index"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Tax *Tax `gorm:"foreignKey:TaxID"`
}
