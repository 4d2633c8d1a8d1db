package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	CategoryID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	VendorID    *uuid.UUID `gorm:"type:uuid;index"`
	CurrencyID  uuid.UUID  `gorm:"type:uuid;not null"`
	ExpenseDate time.Time  `gorm:"index;not null"`

	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reference   string
	Description string
	Notes       string

	Category ExpenseCategory `gorm:"foreignKey:CategoryID"`
	Vendor   *Vendor         `gorm:"foreignKey:VendorID"`
	Currency Currency        `gorm:"foreignKey:CurrencyID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type ExpenseCategory struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	Color       string `gorm:"type:varchar(10)"`
	Enabled     bool   `gorm:"default:true"`

	Expenses []Expense `gorm:"foreignKey:CategoryID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
