package controllers

import (
	"errors"
	"net/http"
	"time"

	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateExpenseInput struct {
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required"`
	VendorID    *uuid.UUID      `json:"vendorId"`
	CurrencyID  uuid.UUID       `json:"currencyId" binding:"required"`
	ExpenseDate time.Time       `json:"expenseDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
}

type UpdateExpenseInput struct {
	CategoryID  *uuid.UUID       `json:"categoryId"`
	VendorID    *uuid.UUID       `json:"vendorId"`
	CurrencyID  *uuid.UUID       `json:"currencyId"`
	ExpenseDate *time.Time       `json:"expenseDate"`
	Amount      *decimal.Decimal `json:"amount"`
	Reference   *string          `json:"reference"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
}

// CreateExpense records a new expense
func CreateExpense(c *gin.Context) {
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

	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		utils.RespondWithError(c, http.StatusBadRequest, "Expense amount must be greater than zero")
		return
	}

	// Validate category exists
	var category models.ExpenseCategory
	if err := config.DB.Where("id = ?", input.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Expense category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	expense := models.Expense{
		ID:          uuid.New(),
		UserID:      userUUID,
		CategoryID:  input.CategoryID,
		VendorID:    input.VendorID,
		CurrencyID:  input.CurrencyID,
		ExpenseDate: input.ExpenseDate,
		Amount:      input.Amount,
		Reference:   input.Reference,
		Description: input.Description,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	config.DB.Preload("Category").Preload("Vendor").Preload("Currency").
		First(&expense, "id = ?", expense.ID)

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses retrieves expenses filtered by category and search term
func GetExpenses(c *gin.Context) {
	query := config.DB.Model(&models.Expense{}).
		Preload("Category").Preload("Vendor").Preload("Currency").
		Order("expense_date DESC")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("description ILIKE ? OR reference ILIKE ?", like, like)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense retrieves a specific expense
func GetExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var expense models.Expense
	if err := config.DB.
		Preload("Category").Preload("Vendor").Preload("Currency").
		Where("id = ?", expenseUUID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense updates an existing expense
func UpdateExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var input UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var expense models.Expense
	if err := config.DB.Where("id = ?", expenseUUID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			utils.RespondWithError(c, http.StatusBadRequest, "Expense amount must be greater than zero")
			return
		}
		expense.Amount = *input.Amount
	}
	if input.CategoryID != nil {
		var category models.ExpenseCategory
		if err := config.DB.Where("id = ?", *input.CategoryID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Expense category not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		expense.CategoryID = *input.CategoryID
	}
	if input.VendorID != nil {
		expense.VendorID = input.VendorID
	}
	if input.CurrencyID != nil {
		expense.CurrencyID = *input.CurrencyID
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Reference != nil {
		expense.Reference = *input.Reference
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	if err := config.DB.Save(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update expense")
		return
	}

	config.DB.Preload("Category").Preload("Vendor").Preload("Currency").
		First(&expense, "id = ?", expense.ID)

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense soft deletes an expense
func DeleteExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var expense models.Expense
	if err := config.DB.Where("id = ?", expenseUUID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
