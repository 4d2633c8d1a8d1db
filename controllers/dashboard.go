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

type monthlyPoint struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type categoryBreakdown struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Color        string          `json:"color"`
	Total        decimal.Decimal `json:"total"`
}

// GetDashboardStats aggregates the numbers shown on the dashboard home screen.
func GetDashboardStats(c *gin.Context) {
	now := time.Now()
	monthStart, monthEnd := utils.MonthRange(now)

	var monthIncome decimal.Decimal
	err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", monthStart, monthEnd).
		Scan(&monthIncome).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly income")
		return
	}

	var monthExpenses decimal.Decimal
	err = config.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date >= ? AND expense_date < ?", monthStart, monthEnd).
		Scan(&monthExpenses).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly expenses")
		return
	}

	pendingStatuses := []string{"DRAFT", "SENT", "VIEWED", "APPROVED", "PARTIAL"}

	var pendingCount int64
	config.DB.Model(&models.Invoice{}).
		Where("status IN ?", pendingStatuses).
		Count(&pendingCount)

	var pendingTotal decimal.Decimal
	config.DB.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total - paid_amount), 0)").
		Where("status IN ?", pendingStatuses).
		Scan(&pendingTotal)

	var overdueInvoices []models.Invoice
	config.DB.Preload("Customer").
		Where("due_date < ? AND status NOT IN ?", utils.BeginningOfDay(now), []string{"PAID", "CANCELLED"}).
		Order("due_date ASC").
		Limit(10).
		Find(&overdueInvoices)

	var recentInvoices []models.Invoice
	config.DB.Preload("Customer").
		Order("created_at DESC").
		Limit(5).
		Find(&recentInvoices)

	var recentExpenses []models.Expense
	config.DB.Preload("Category").
		Order("created_at DESC").
		Limit(5).
		Find(&recentExpenses)

	sixMonthsAgo, _ := utils.MonthRange(now.AddDate(0, -5, 0))

	var incomeSeries []monthlyPoint
	config.DB.Raw(`
		SELECT to_char(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE payment_date >= ?
		GROUP BY to_char(payment_date, 'YYYY-MM')
		ORDER BY month ASC`, sixMonthsAgo).Scan(&incomeSeries)

	var expenseSeries []monthlyPoint
	config.DB.Raw(`
		SELECT to_char(expense_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0) AS total
		FROM expenses
		WHERE expense_date >= ?
		GROUP BY to_char(expense_date, 'YYYY-MM')
		ORDER BY month ASC`, sixMonthsAgo).Scan(&expenseSeries)

	var expensesByCategory []categoryBreakdown
	config.DB.Raw(`
		SELECT ec.id AS category_id, ec.name AS category_name, ec.color, COALESCE(SUM(e.amount), 0) AS total
		FROM expense_categories ec
		LEFT JOIN expenses e ON e.category_id = ec.id
			AND e.expense_date >= ? AND e.expense_date < ?
		GROUP BY ec.id, ec.name, ec.color
		HAVING SUM(e.amount) > 0
		ORDER BY total DESC`, monthStart, monthEnd).Scan(&expensesByCategory)

	c.JSON(http.StatusOK, gin.H{
		"monthIncome":        monthIncome,
		"monthExpenses":      monthExpenses,
		"monthProfit":        monthIncome.Sub(monthExpenses),
		"pendingCount":       pendingCount,
		"pendingTotal":       pendingTotal,
		"overdueInvoices":    overdueInvoices,
		"recentInvoices":     recentInvoices,
		"recentExpenses":     recentExpenses,
		"incomeByMonth":      incomeSeries,
		"expensesByMonth":    expenseSeries,
		"expensesByCategory": expensesByCategory,
	})
}
