// controllers/payment.go
package controllers

import (
	"errors"
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
	"gorm.io/gorm/clause"
)

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	InvoiceID   uuid.UUID       `json:"invoiceId" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      string          `json:"method" binding:"required,oneof=CASH BANK_TRANSFER CREDIT_CARD PAYPAL CHECK OTHER"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
}

// CreatePayment records a payment against an invoice and moves the invoice's
// paid amount and status in the same transaction. The invoice row is locked
// for the duration, so two simultaneous payments serialize instead of both
// reading the same prior paid amount and losing one update.
func CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
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
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", input.InvoiceID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	result, err := billing.ApplyPayment(invoice.Total, invoice.PaidAmount, invoice.Status, input.Amount)
	if err != nil {
		tx.Rollback()
		respondBillingError(c, err)
		return
	}

	payment := models.Payment{
		ID:          uuid.New(),
		InvoiceID:   input.InvoiceID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		Method:      input.Method,
		Reference:   input.Reference,
		Notes:       input.Notes,
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	if err := tx.Model(&models.Invoice{}).Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"paid_amount": result.PaidAmount,
			"status":      result.Status,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetInvoicePayments retrieves all payments for an invoice
func GetInvoicePayments(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("invoice_id = ?", invoiceUUID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
