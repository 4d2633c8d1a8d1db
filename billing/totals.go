// Package billing holds the invoice computation core: line and invoice
// totals, payment application and the resulting status, and invoice number
// formatting. Everything here is pure; persistence and tax storage are the
// caller's problem.
package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxLookup resolves a tax ID to its percentage rate. The second return
// value is false when the tax is unknown, in which case the line simply
// carries no tax.
type TaxLookup func(id uuid.UUID) (decimal.Decimal, bool)

// LineInput is one line item as submitted on invoice creation or edit.
type LineInput struct {
	Name        string
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	TaxID       *uuid.UUID
}

// LineResult is a line item with its computed amounts.
type LineResult struct {
	LineInput
	Total decimal.Decimal
	Tax   decimal.Decimal
}

// Totals is the aggregate of all line results plus the discount.
type Totals struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
	Lines          []LineResult
}

// CalculateLine computes a line's extended total and its tax contribution.
// Quantity must be positive and price non-negative.
func CalculateLine(in LineInput, rate TaxLookup) (LineResult, error) {
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return LineResult{}, ErrInvalidQuantity
	}
	if in.Price.IsNegative() {
		return LineResult{}, ErrNegativePrice
	}

	out := LineResult{
		LineInput: in,
		Total:     in.Quantity.Mul(in.Price),
		Tax:       decimal.Zero,
	}
	if in.TaxID != nil && rate != nil {
		if r, ok := rate(*in.TaxID); ok {
			out.Tax = out.Total.Mul(r).Div(hundred)
		}
	}
	return out, nil
}

// ComputeInvoiceTotals reduces the line items into subtotal, tax amount and
// grand total. The discount must be non-negative and may not exceed
// subtotal plus tax; a negative invoice total is never produced.
func ComputeInvoiceTotals(lines []LineInput, discount decimal.Decimal, rate TaxLookup) (Totals, error) {
	if discount.IsNegative() {
		return Totals{}, ErrNegativeDiscount
	}

	totals := Totals{
		Subtotal:       decimal.Zero,
		TaxAmount:      decimal.Zero,
		DiscountAmount: discount,
		Lines:          make([]LineResult, 0, len(lines)),
	}
	for _, line := range lines {
		res, err := CalculateLine(line, rate)
		if err != nil {
			return Totals{}, err
		}
		totals.Subtotal = totals.Subtotal.Add(res.Total)
		totals.TaxAmount = totals.TaxAmount.Add(res.Tax)
		totals.Lines = append(totals.Lines, res)
	}

	gross := totals.Subtotal.Add(totals.TaxAmount)
	if discount.GreaterThan(gross) {
		return Totals{}, ErrDiscountExceedsTotal
	}
	totals.Total = gross.Sub(discount)
	return totals, nil
}
