// controllers/invoice.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"ledgerbook-backend/billing"
	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceItemInput defines the structure for an invoice line item
type InvoiceItemInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TaxID       *uuid.UUID      `json:"taxId"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	CustomerID     uuid.UUID          `json:"customerId" binding:"required"`
	CurrencyID     uuid.UUID          `json:"currencyId" binding:"required"`
	InvoiceDate    time.Time          `json:"invoiceDate" binding:"required"`
	DueDate        time.Time          `json:"dueDate" binding:"required"`
	Items          []InvoiceItemInput `json:"items" binding:"required,min=1"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	Notes          string             `json:"notes"`
	Terms          string             `json:"terms"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	CustomerID     *uuid.UUID          `json:"customerId"`
	CurrencyID     *uuid.UUID          `json:"currencyId"`
	InvoiceDate    *time.Time          `json:"invoiceDate"`
	DueDate        *time.Time          `json:"dueDate"`
	Items          *[]InvoiceItemInput `json:"items"`
	DiscountAmount *decimal.Decimal    `json:"discountAmount"`
	Notes          *string             `json:"notes"`
	Terms          *string             `json:"terms"`
}

type UpdateInvoiceStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// loadTaxLookup resolves the tax IDs referenced by the submitted items into
// a billing.TaxLookup. Unknown or disabled taxes resolve to not-found, which
// the core treats as zero tax; they are logged as a data-quality signal.
func loadTaxLookup(db *gorm.DB, items []InvoiceItemInput) (billing.TaxLookup, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.TaxID != nil {
			ids = append(ids, *item.TaxID)
		}
	}

	rates := make(map[uuid.UUID]decimal.Decimal, len(ids))
	if len(ids) > 0 {
		var taxes []models.Tax
		if err := db.Where("id IN ? AND enabled = true", ids).Find(&taxes).Error; err != nil {
			return nil, err
		}
		for _, tax := range taxes {
			rates[tax.ID] = tax.Rate
		}
		for _, id := range ids {
			if _, ok := rates[id]; !ok {
				log.Printf("Invoice references unknown tax %s, treating as zero tax", id)
			}
		}
	}

	return func(id uuid.UUID) (decimal.Decimal, bool) {
		rate, ok := rates[id]
		return rate, ok
	}, nil
}

func toLineInputs(items []InvoiceItemInput) []billing.LineInput {
	lines := make([]billing.LineInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, billing.LineInput{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TaxID:       item.TaxID,
		})
	}
	return lines
}

func toInvoiceItems(invoiceID uuid.UUID, lines []billing.LineResult) []models.InvoiceItem {
	items := make([]models.InvoiceItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Name:        line.Name,
			Description: line.Description,
			Quantity:    line.Quantity,
			Price:       line.Price,
			TaxID:       line.TaxID,
			Total:       line.Total,
		})
	}
	return items
}

// respondBillingError maps billing core errors onto HTTP status codes
func respondBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, billing.ErrInvalidQuantity),
		errors.Is(err, billing.ErrNegativePrice),
		errors.Is(err, billing.ErrNegativeDiscount),
		errors.Is(err, billing.ErrInvalidPaymentAmount):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, billing.ErrDiscountExceedsTotal),
		errors.Is(err, billing.ErrInvoiceCancelled),
		errors.Is(err, billing.ErrInvoiceAlreadyPaid),
		errors.Is(err, billing.ErrOverpayment):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}

// CreateInvoice creates a new invoice with computed totals and an
// atomically allocated invoice number
func CreateInvoice(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate customer exists
	var customer models.Customer
	if err := config.DB.Where("id = ?", input.CustomerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate currency exists
	var currency models.Currency
	if err := config.DB.Where("id = ? AND enabled = true", input.CurrencyID).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Currency not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	rate, err := loadTaxLookup(config.DB, input.Items)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	totals, err := billing.ComputeInvoiceTotals(toLineInputs(input.Items), input.DiscountAmount, rate)
	if err != nil {
		respondBillingError(c, err)
		return
	}

	invoiceID := uuid.New()
	invoice := models.Invoice{
		ID:             invoiceID,
		UserID:         userUUID,
		CustomerID:     input.CustomerID,
		CurrencyID:     input.CurrencyID,
		InvoiceDate:    input.InvoiceDate,
		DueDate:        input.DueDate,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		DiscountAmount: totals.DiscountAmount,
		Total:          totals.Total,
		PaidAmount:     decimal.Zero,
		Status:         billing.StatusDraft,
		Notes:          input.Notes,
		Terms:          input.Terms,
		Items:          toInvoiceItems(invoiceID, totals.Lines),
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Number allocation shares the insert transaction so an aborted
	// creation never burns a number visible to others mid-flight.
	seq, err := models.NextInvoiceSequence(tx)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to allocate invoice number")
		return
	}
	invoice.InvoiceNumber = billing.InvoiceNumber(seq)

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	config.DB.Preload("Customer").Preload("Currency").Preload("Items.Tax").
		First(&invoice, "id = ?", invoice.ID)

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves invoices filtered by status and search term
func GetInvoices(c *gin.Context) {
	query := config.DB.Model(&models.Invoice{}).
		Preload("Customer").Preload("Currency").Preload("Items").
		Order("invoice_date DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("invoices.status = ?", status)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.
			Joins("JOIN customers ON customers.id = invoices.customer_id").
			Where("invoices.invoice_number ILIKE ? OR customers.name ILIKE ?", like, like)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice with items, taxes and payments
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.
		Preload("Customer").Preload("Currency").
		Preload("Items.Tax").Preload("Payments").
		Where("id = ?", invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates an existing invoice; submitting items discards the
// prior line set and recomputes all totals
func UpdateInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Preload("Items").
		Where("id = ?", invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := tx.Where("id = ?", *input.CustomerID).First(&customer).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		invoice.CustomerID = *input.CustomerID
	}

	if input.CurrencyID != nil {
		var currency models.Currency
		if err := tx.Where("id = ? AND enabled = true", *input.CurrencyID).First(&currency).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Currency not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		invoice.CurrencyID = *input.CurrencyID
	}

	if input.InvoiceDate != nil {
		invoice.InvoiceDate = *input.InvoiceDate
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.Terms != nil {
		invoice.Terms = *input.Terms
	}

	discount := invoice.DiscountAmount
	if input.DiscountAmount != nil {
		discount = *input.DiscountAmount
	}

	// If items are being updated, the prior line set is superseded and
	// every total is recomputed from the submitted payload.
	if input.Items != nil {
		rate, err := loadTaxLookup(tx, *input.Items)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}

		totals, err := billing.ComputeInvoiceTotals(toLineInputs(*input.Items), discount, rate)
		if err != nil {
			tx.Rollback()
			respondBillingError(c, err)
			return
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}

		invoice.Items = toInvoiceItems(invoice.ID, totals.Lines)
		invoice.Subtotal = totals.Subtotal
		invoice.TaxAmount = totals.TaxAmount
		invoice.DiscountAmount = totals.DiscountAmount
		invoice.Total = totals.Total
	} else if input.DiscountAmount != nil {
		// Discount changed without touching the lines: rebuild the total
		// from the stored subtotal and tax, with the same guard.
		if discount.IsNegative() {
			tx.Rollback()
			respondBillingError(c, billing.ErrNegativeDiscount)
			return
		}
		gross := invoice.Subtotal.Add(invoice.TaxAmount)
		if discount.GreaterThan(gross) {
			tx.Rollback()
			respondBillingError(c, billing.ErrDiscountExceedsTotal)
			return
		}
		invoice.DiscountAmount = discount
		invoice.Total = gross.Sub(discount)
	}

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	config.DB.Preload("Customer").Preload("Currency").Preload("Items.Tax").
		First(&invoice, "id = ?", invoice.ID)

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceStatus sets the invoice status directly, e.g. marking an
// invoice SENT or CANCELLED. PARTIAL and PAID normally arrive through
// payment application instead.
func UpdateInvoiceStatus(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !billing.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown invoice status: "+input.Status)
		return
	}

	var invoice models.Invoice
	if err := config.DB.Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&invoice).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice status")
		return
	}

	config.DB.Preload("Customer").Preload("Currency").Preload("Items").
		First(&invoice, "id = ?", invoice.ID)

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice deletes an invoice along with its items and payments
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.Payment{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payments")
		return
	}
	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}
	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
