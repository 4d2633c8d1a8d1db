package models

import "gorm.io/gorm"

// InvoiceSequence backs invoice number allocation. A single row per
// sequence name is bumped atomically; concurrent invoice creations
// serialize on that row instead of racing on a table count.
type InvoiceSequence struct {
	Name      string `gorm:"primary_key;type:varchar(30)"`
	NextValue int64  `gorm:"not null;default:1"`
}

const invoiceSequenceName = "invoice"

// NextInvoiceSequence reserves and returns the next invoice sequence value.
// Must run inside the same transaction that inserts the invoice so an
// aborted creation rolls the reservation back. The upsert is a single
// statement, so two concurrent creations can never observe the same value.
func NextInvoiceSequence(tx *gorm.DB) (int64, error) {
	var value int64
	err := tx.Raw(`
		INSERT INTO invoice_sequences (name, next_value)
		VALUES (?, 2)
		ON CONFLICT (name)
		DO UPDATE SET next_value = invoice_sequences.next_value + 1
		RETURNING next_value - 1
	`, invoiceSequenceName).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
