package controllers

import (
	"net/http"

	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTaxInput struct {
	Name        string          `json:"name" binding:"required"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
}

// GetTaxes retrieves all enabled taxes
func GetTaxes(c *gin.Context) {
	var taxes []models.Tax
	if err := config.DB.Where("enabled = true").Order("name ASC").Find(&taxes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve taxes")
		return
	}

	c.JSON(http.StatusOK, taxes)
}

// CreateTax creates a new tax
func CreateTax(c *gin.Context) {
	var input CreateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Rate.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Tax rate cannot be negative")
		return
	}

	tax := models.Tax{
		ID:          uuid.New(),
		Name:        input.Name,
		Rate:        input.Rate,
		Description: input.Description,
		Enabled:     true,
	}

	if err := config.DB.Create(&tax).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tax")
		return
	}

	c.JSON(http.StatusCreated, tax)
}
