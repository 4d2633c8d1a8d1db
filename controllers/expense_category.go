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

type CreateExpenseCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type UpdateExpenseCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Enabled     *bool   `json:"enabled"`
}

type expenseCategoryWithCount struct {
	models.ExpenseCategory
	ExpenseCount int64 `json:"expenseCount"`
}

// GetExpenseCategories retrieves enabled categories with their expense counts
func GetExpenseCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	if err := config.DB.Where("enabled = true").Order("name ASC").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	out := make([]expenseCategoryWithCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		config.DB.Model(&models.Expense{}).Where("category_id = ?", category.ID).Count(&count)
		out = append(out, expenseCategoryWithCount{ExpenseCategory: category, ExpenseCount: count})
	}

	c.JSON(http.StatusOK, out)
}

// CreateExpenseCategory creates a new expense category
func CreateExpenseCategory(c *gin.Context) {
	var input CreateExpenseCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Color != "" && !utils.ValidateHexColor(input.Color) {
		utils.RespondWithError(c, http.StatusBadRequest, "Color must be a #rrggbb value")
		return
	}

	category := models.ExpenseCategory{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		Enabled:     true,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateExpenseCategory updates an existing expense category
func UpdateExpenseCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var input UpdateExpenseCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var category models.ExpenseCategory
	if err := config.DB.Where("id = ?", categoryUUID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Color != nil && *input.Color != "" && !utils.ValidateHexColor(*input.Color) {
		utils.RespondWithError(c, http.StatusBadRequest, "Color must be a #rrggbb value")
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.Enabled != nil {
		category.Enabled = *input.Enabled
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}
