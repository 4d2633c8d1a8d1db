package billing

import "errors"

// Validation and invariant errors returned by the billing functions.
// Controllers translate these into HTTP status codes.
var (
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrNegativePrice        = errors.New("unit price cannot be negative")
	ErrNegativeDiscount     = errors.New("discount cannot be negative")
	ErrDiscountExceedsTotal = errors.New("discount exceeds subtotal plus tax")
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
	ErrInvoiceCancelled     = errors.New("invoice is cancelled")
	ErrInvoiceAlreadyPaid   = errors.New("invoice is already paid")
	ErrOverpayment          = errors.New("payment exceeds outstanding balance")
)
