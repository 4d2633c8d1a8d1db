package billing_test

import (
	"testing"

	"ledgerbook-backend/billing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-00001", billing.InvoiceNumber(1))
	assert.Equal(t, "INV-00042", billing.InvoiceNumber(42))
	assert.Equal(t, "INV-99999", billing.InvoiceNumber(99999))
	// Padding widens past five digits rather than truncating.
	assert.Equal(t, "INV-100000", billing.InvoiceNumber(100000))
}

func TestInvoiceNumberDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for seq := int64(1); seq <= 1000; seq++ {
		n := billing.InvoiceNumber(seq)
		assert.False(t, seen[n], "duplicate number %s", n)
		seen[n] = true
	}
}
