package controllers

import (
	"net/http"

	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCurrencies retrieves all enabled currencies
func GetCurrencies(c *gin.Context) {
	var currencies []models.Currency
	if err := config.DB.Where("enabled = true").Order("code ASC").Find(&currencies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve currencies")
		return
	}

	c.JSON(http.StatusOK, currencies)
}
