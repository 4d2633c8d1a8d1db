package billing

import "github.com/shopspring/decimal"

// PaymentResult carries the invoice fields that change when a payment is
// applied.
type PaymentResult struct {
	PaidAmount decimal.Decimal
	Status     string
}

// ApplyPayment computes the invoice's new paid amount and status after a
// payment. The status is a pure function of the new paid amount and the
// total: PAID once fully covered, PARTIAL while some balance remains.
// Payments against CANCELLED or already PAID invoices are rejected, as are
// payments that would push the paid amount past the total.
func ApplyPayment(total, paidAmount decimal.Decimal, status string, amount decimal.Decimal) (PaymentResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return PaymentResult{}, ErrInvalidPaymentAmount
	}
	switch status {
	case StatusCancelled:
		return PaymentResult{}, ErrInvoiceCancelled
	case StatusPaid:
		return PaymentResult{}, ErrInvoiceAlreadyPaid
	}

	newPaid := paidAmount.Add(amount)
	if newPaid.GreaterThan(total) {
		return PaymentResult{}, ErrOverpayment
	}

	newStatus := status
	if newPaid.GreaterThanOrEqual(total) {
		newStatus = StatusPaid
	} else if newPaid.GreaterThan(decimal.Zero) {
		newStatus = StatusPartial
	}

	return PaymentResult{PaidAmount: newPaid, Status: newStatus}, nil
}
