package models

import (
	"time"

	"github.com/google/uuid"
)

// ReminderLog records an overdue notice sent for an invoice, so the
// scheduler does not nag the same customer every day.
type ReminderLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Channel      string    `gorm:"type:varchar(20);default:'sms'"`
	Status       string    `gorm:"type:varchar(20);default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time `gorm:"not null"`
}
