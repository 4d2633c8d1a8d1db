package controllers

import (
	"errors"
	"net/http"

	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateVendorInput struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
	Country string  `json:"country"`
	Notes   string  `json:"notes"`
}

type UpdateVendorInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
	Country *string `json:"country"`
	Notes   *string `json:"notes"`
}

// CreateVendor creates a new vendor
func CreateVendor(c *gin.Context) {
	var input CreateVendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	vendor := models.Vendor{
		ID:      uuid.New(),
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Country: input.Country,
		Notes:   input.Notes,
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}

	if err := config.DB.Create(&vendor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vendor")
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetVendors retrieves all vendors, optionally filtered by search term
func GetVendors(c *gin.Context) {
	query := config.DB.Model(&models.Vendor{}).Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var vendors []models.Vendor
	if err := query.Find(&vendors).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vendors")
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// GetVendor retrieves a specific vendor with their recent expenses
func GetVendor(c *gin.Context) {
	vendorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID format")
		return
	}

	var vendor models.Vendor
	if err := config.DB.
		Preload("Expenses", func(db *gorm.DB) *gorm.DB {
			return db.Order("expense_date DESC").Limit(10)
		}).
		Where("id = ?", vendorUUID).
		First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vendor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// UpdateVendor updates an existing vendor
func UpdateVendor(c *gin.Context) {
	vendorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID format")
		return
	}

	var input UpdateVendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("id = ?", vendorUUID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vendor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.City != nil {
		vendor.City = *input.City
	}
	if input.State != nil {
		vendor.State = *input.State
	}
	if input.ZipCode != nil {
		vendor.ZipCode = *input.ZipCode
	}
	if input.Country != nil {
		vendor.Country = *input.Country
	}
	if input.Notes != nil {
		vendor.Notes = *input.Notes
	}

	if err := config.DB.Save(&vendor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor soft deletes a vendor
func DeleteVendor(c *gin.Context) {
	vendorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vendor ID format")
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("id = ?", vendorUUID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vendor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&vendor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vendor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}
