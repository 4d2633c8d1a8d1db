package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name    string `gorm:"not null;index"`
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
	Notes   string

	Invoices []Invoice `gorm:"foreignKey:CustomerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
