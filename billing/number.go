package billing

import "fmt"

const invoiceNumberPrefix = "INV-"

// InvoiceNumber formats a sequence value as a human-readable invoice number,
// e.g. 12 -> "INV-00012". Sequence values are allocated atomically by the
// storage layer (models.NextInvoiceSequence); formatting stays pure.
func InvoiceNumber(seq int64) string {
	return fmt.Sprintf("%s%05d", invoiceNumberPrefix, seq)
}
