package config

import (
	"log"

	"ledgerbook-backend/models"

	"github.com/shopspring/decimal"
)

// SeedDefaults loads the catalog data a fresh install needs: currencies,
// taxes and expense categories. Each table is only seeded when empty.
func SeedDefaults() {
	seedCurrencies()
	seedTaxes()
	seedExpenseCategories()
}

func seedCurrencies() {
	var count int64
	DB.Model(&models.Currency{}).Count(&count)
	if count > 0 {
		return
	}

	currencies := []models.Currency{
		{Code: "EGP", Name: "Egyptian Pound", Symbol: "E£", Rate: decimal.NewFromInt(1), Enabled: true},
		{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromFloat(30.9), Enabled: true},
		{Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.NewFromFloat(33.5), Enabled: true},
		{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: decimal.NewFromFloat(39.2), Enabled: true},
	}
	if err := DB.Create(&currencies).Error; err != nil {
		log.Printf("Failed to seed currencies: %v", err)
		return
	}
	log.Println("Seeded default currencies")
}

func seedTaxes() {
	var count int64
	DB.Model(&models.Tax{}).Count(&count)
	if count > 0 {
		return
	}

	taxes := []models.Tax{
		{Name: "VAT (14%)", Rate: decimal.NewFromInt(14), Description: "Value Added Tax", Enabled: true},
		{Name: "Sales Tax (10%)", Rate: decimal.NewFromInt(10), Description: "Sales Tax", Enabled: true},
		{Name: "Withholding Tax (1%)", Rate: decimal.NewFromInt(1), Description: "Withholding Tax", Enabled: true},
	}
	if err := DB.Create(&taxes).Error; err != nil {
		log.Printf("Failed to seed taxes: %v", err)
		return
	}
	log.Println("Seeded default taxes")
}

func seedExpenseCategories() {
	var count int64
	DB.Model(&models.ExpenseCategory{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.ExpenseCategory{
		{Name: "Office Supplies", Description: "Office supplies and equipment", Color: "#3b82f6", Enabled: true},
		{Name: "Marketing", Description: "Marketing and advertising", Color: "#8b5cf6", Enabled: true},
		{Name: "Utilities", Description: "Electricity, water, internet", Color: "#ec4899", Enabled: true},
		{Name: "Travel", Description: "Business travel expenses", Color: "#f59e0b", Enabled: true},
		{Name: "Software", Description: "Software subscriptions", Color: "#10b981", Enabled: true},
		{Name: "Rent", Description: "Office rent", Color: "#ef4444", Enabled: true},
	}
	if err := DB.Create(&categories).Error; err != nil {
		log.Printf("Failed to seed expense categories: %v", err)
		return
	}
	log.Println("Seeded default expense categories")
}
