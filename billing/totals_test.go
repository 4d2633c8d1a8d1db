package billing_test

import (
	"math/rand"
	"testing"

	"ledgerbook-backend/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vatID   = uuid.New()
	salesID = uuid.New()
)

func testRates(id uuid.UUID) (decimal.Decimal, bool) {
	switch id {
	case vatID:
		return decimal.NewFromInt(14), true
	case salesID:
		return decimal.NewFromInt(10), true
	}
	return decimal.Decimal{}, false
}

func line(qty, price string, taxID *uuid.UUID) billing.LineInput {
	return billing.LineInput{
		Name:     "item",
		Quantity: decimal.RequireFromString(qty),
		Price:    decimal.RequireFromString(price),
		TaxID:    taxID,
	}
}

func TestCalculateLine(t *testing.T) {
	tests := []struct {
		name      string
		in        billing.LineInput
		wantTotal string
		wantTax   string
		wantErr   error
	}{
		{
			name:      "taxed line",
			in:        line("2", "100", &vatID),
			wantTotal: "200",
			wantTax:   "28",
		},
		{
			name:      "untaxed line",
			in:        line("1", "500", nil),
			wantTotal: "500",
			wantTax:   "0",
		},
		{
			name:      "fractional quantity",
			in:        line("1.5", "10.50", nil),
			wantTotal: "15.75",
			wantTax:   "0",
		},
		{
			name:      "unknown tax contributes zero",
			in:        line("3", "10", ptr(uuid.New())),
			wantTotal: "30",
			wantTax:   "0",
		},
		{
			name:      "zero price is allowed",
			in:        line("4", "0", &vatID),
			wantTotal: "0",
			wantTax:   "0",
		},
		{
			name:    "zero quantity rejected",
			in:      line("0", "100", nil),
			wantErr: billing.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity rejected",
			in:      line("-1", "100", nil),
			wantErr: billing.ErrInvalidQuantity,
		},
		{
			name:    "negative price rejected",
			in:      line("1", "-5", nil),
			wantErr: billing.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := billing.CalculateLine(tt.in, testRates)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"Total = %s, want %s", got.Total, tt.wantTotal)
			assert.True(t, got.Tax.Equal(decimal.RequireFromString(tt.wantTax)),
				"Tax = %s, want %s", got.Tax, tt.wantTax)
		})
	}
}

func TestCalculateLineDeterministic(t *testing.T) {
	in := line("3", "33.33", &vatID)
	first, err := billing.CalculateLine(in, testRates)
	require.NoError(t, err)
	second, err := billing.CalculateLine(in, testRates)
	require.NoError(t, err)

	// Exact decimal arithmetic: repeated evaluation never drifts.
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Tax.Equal(second.Tax))
}

func TestComputeInvoiceTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []billing.LineInput
		discount     string
		wantSubtotal string
		wantTax      string
		wantTotal    string
		wantErr      error
	}{
		{
			name:         "no lines",
			lines:        nil,
			discount:     "0",
			wantSubtotal: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name:         "single taxed line",
			lines:        []billing.LineInput{line("2", "100", &vatID)},
			discount:     "0",
			wantSubtotal: "200",
			wantTax:      "28",
			wantTotal:    "228",
		},
		{
			name:         "discount without tax",
			lines:        []billing.LineInput{line("1", "500", nil)},
			discount:     "50",
			wantSubtotal: "500",
			wantTax:      "0",
			wantTotal:    "450",
		},
		{
			name: "mixed tax rates",
			lines: []billing.LineInput{
				line("1", "100", &vatID),
				line("1", "100", &salesID),
				line("2", "50", nil),
			},
			discount:     "0",
			wantSubtotal: "300",
			wantTax:      "24",
			wantTotal:    "324",
		},
		{
			name:         "discount equal to gross yields zero total",
			lines:        []billing.LineInput{line("1", "100", nil)},
			discount:     "100",
			wantSubtotal: "100",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name:     "negative discount rejected",
			lines:    []billing.LineInput{line("1", "100", nil)},
			discount: "-1",
			wantErr:  billing.ErrNegativeDiscount,
		},
		{
			name:     "discount above gross rejected",
			lines:    []billing.LineInput{line("1", "100", &vatID)},
			discount: "114.01",
			wantErr:  billing.ErrDiscountExceedsTotal,
		},
		{
			name:     "bad line surfaces its error",
			lines:    []billing.LineInput{line("1", "100", nil), line("0", "5", nil)},
			discount: "0",
			wantErr:  billing.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := billing.ComputeInvoiceTotals(tt.lines, decimal.RequireFromString(tt.discount), testRates)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)),
				"Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			assert.True(t, got.TaxAmount.Equal(decimal.RequireFromString(tt.wantTax)),
				"TaxAmount = %s, want %s", got.TaxAmount, tt.wantTax)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"Total = %s, want %s", got.Total, tt.wantTotal)
			assert.Len(t, got.Lines, len(tt.lines))
		})
	}
}

func TestComputeInvoiceTotalsOrderIndependent(t *testing.T) {
	lines := []billing.LineInput{
		line("2", "100", &vatID),
		line("1", "19.99", &salesID),
		line("7", "3.33", nil),
		line("0.5", "1000", &vatID),
	}
	discount := decimal.RequireFromString("25")

	base, err := billing.ComputeInvoiceTotals(lines, discount, testRates)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]billing.LineInput, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := billing.ComputeInvoiceTotals(shuffled, discount, testRates)
		require.NoError(t, err)
		assert.True(t, got.Subtotal.Equal(base.Subtotal))
		assert.True(t, got.TaxAmount.Equal(base.TaxAmount))
		assert.True(t, got.Total.Equal(base.Total))
	}
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }
