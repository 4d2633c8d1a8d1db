package controllers

import (
	"net/http"
	"time"

	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportRange reads startDate/endDate query params, defaulting to the
// current year to date. Dates use the YYYY-MM-DD format.
func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	start := utils.YearStart(now)
	end := now

	if s := c.Query("startDate"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
			return start, end, false
		}
		start = parsed
	}
	if s := c.Query("endDate"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
			return start, end, false
		}
		// Include the whole end day.
		end = parsed.AddDate(0, 0, 1)
	}
	if end.Before(start) {
		utils.RespondWithError(c, http.StatusBadRequest, "endDate must not be before startDate")
		return start, end, false
	}
	return start, end, true
}

// GetProfitLossReport returns income, expenses and net profit for a period.
func GetProfitLossReport(c *gin.Context) {
	start, end, ok := reportRange(c)
	if !ok {
		return
	}

	var income decimal.Decimal
	err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Scan(&income).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute income")
		return
	}

	var expenses decimal.Decimal
	err = config.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date >= ? AND expense_date < ?", start, end).
		Scan(&expenses).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute expenses")
		return
	}

	var expensesByCategory []categoryBreakdown
	config.DB.Raw(`
		SELECT ec.id AS category_id, ec.name AS category_name, ec.color, COALESCE(SUM(e.amount), 0) AS total
		FROM expense_categories ec
		LEFT JOIN expenses e ON e.category_id = ec.id
			AND e.expense_date >= ? AND e.expense_date < ?
		GROUP BY ec.id, ec.name, ec.color
		HAVING SUM(e.amount) > 0
		ORDER BY total DESC`, start, end).Scan(&expensesByCategory)

	c.JSON(http.StatusOK, gin.H{
		"startDate":          start.Format("2006-01-02"),
		"endDate":            end.AddDate(0, 0, -1).Format("2006-01-02"),
		"income":             income,
		"expenses":           expenses,
		"netProfit":          income.Sub(expenses),
		"expensesByCategory": expensesByCategory,
	})
}

type customerIncomeRow struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	InvoiceCount int64           `json:"invoiceCount"`
	Total        decimal.Decimal `json:"total"`
}

// GetIncomeSummaryReport breaks income down by month and by customer.
func GetIncomeSummaryReport(c *gin.Context) {
	start, end, ok := reportRange(c)
	if !ok {
		return
	}

	var total decimal.Decimal
	err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Scan(&total).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute income")
		return
	}

	var byMonth []monthlyPoint
	config.DB.Raw(`
		SELECT to_char(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE payment_date >= ? AND payment_date < ?
		GROUP BY to_char(payment_date, 'YYYY-MM')
		ORDER BY month ASC`, start, end).Scan(&byMonth)

	var byCustomer []customerIncomeRow
	config.DB.Raw(`
		SELECT c.id AS customer_id, c.name AS customer_name,
			COUNT(DISTINCT i.id) AS invoice_count, COALESCE(SUM(p.amount), 0) AS total
		FROM payments p
		JOIN invoices i ON i.id = p.invoice_id
		JOIN customers c ON c.id = i.customer_id
		WHERE p.payment_date >= ? AND p.payment_date < ?
		GROUP BY c.id, c.name
		ORDER BY total DESC`, start, end).Scan(&byCustomer)

	c.JSON(http.StatusOK, gin.H{
		"startDate":  start.Format("2006-01-02"),
		"endDate":    end.AddDate(0, 0, -1).Format("2006-01-02"),
		"total":      total,
		"byMonth":    byMonth,
		"byCustomer": byCustomer,
	})
}

type vendorExpenseRow struct {
	VendorID   string          `json:"vendorId"`
	VendorName string          `json:"vendorName"`
	Total      decimal.Decimal `json:"total"`
}

// GetExpenseSummaryReport breaks expenses down by month, category and vendor.
func GetExpenseSummaryReport(c *gin.Context) {
	start, end, ok := reportRange(c)
	if !ok {
		return
	}

	var total decimal.Decimal
	err := config.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date >= ? AND expense_date < ?", start, end).
		Scan(&total).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute expenses")
		return
	}

	var byMonth []monthlyPoint
	config.DB.Raw(`
		SELECT to_char(expense_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE expense_date >= ? AND expense_date < ?
		GROUP BY to_char(expense_date, 'YYYY-MM')
		ORDER BY month ASC`, start, end).Scan(&byMonth)

	var byCategory []categoryBreakdown
	config.DB.Raw(`
		SELECT ec.id AS category_id, ec.name AS category_name, ec.color, COALESCE(SUM(e.amount), 0) AS total
		FROM expense_categories ec
		LEFT JOIN expenses e ON e.category_id = ec.id
			AND e.expense_date >= ? AND e.expense_date < ?
		GROUP BY ec.id, ec.name, ec.color
		HAVING SUM(e.amount) > 0
		ORDER BY total DESC`, start, end).Scan(&byCategory)

	var byVendor []vendorExpenseRow
	config.DB.Raw(`
		SELECT v.id AS vendor_id, v.name AS vendor_name, COALESCE(SUM(e.amount), 0) AS total
		FROM expenses e
		JOIN vendors v ON v.id = e.vendor_id
		WHERE e.expense_date >= ? AND e.expense_date < ?
		GROUP BY v.id, v.name
		ORDER BY total DESC`, start, end).Scan(&byVendor)

	c.JSON(http.StatusOK, gin.H{
		"startDate":  start.Format("2006-01-02"),
		"endDate":    end.AddDate(0, 0, -1).Format("2006-01-02"),
		"total":      total,
		"byMonth":    byMonth,
		"byCategory": byCategory,
		"byVendor":   byVendor,
	})
}
