package routes

import (
	"net/http"
	"os"

	"ledgerbook-backend/config"
	"ledgerbook-backend/controllers"
	"ledgerbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Vendor routes
		vendors := api.Group("/vendors")
		{
			vendors.POST("", controllers.CreateVendor)
			vendors.GET("", controllers.GetVendors)
			vendors.GET("/:id", controllers.GetVendor)
			vendors.PUT("/:id", controllers.UpdateVendor)
			vendors.DELETE("/:id", controllers.DeleteVendor)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.PATCH("/:id/status", controllers.UpdateInvoiceStatus)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", controllers.CreatePayment)
			payments.GET("/invoice/:invoiceId", controllers.GetInvoicePayments)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("", controllers.CreateExpense)
			expenses.GET("", controllers.GetExpenses)
			expenses.GET("/:id", controllers.GetExpense)
			expenses.PUT("/:id", controllers.UpdateExpense)
			expenses.DELETE("/:id", controllers.DeleteExpense)
		}

		categories := api.Group("/expense-categories")
		{
			categories.GET("", controllers.GetExpenseCategories)
			categories.POST("", controllers.CreateExpenseCategory)
			categories.PUT("/:id", controllers.UpdateExpenseCategory)
		}

		taxes := api.Group("/taxes")
		{
			taxes.GET("", controllers.GetTaxes)
			taxes.POST("", controllers.CreateTax)
		}

		api.GET("/currencies", controllers.GetCurrencies)

		// Dashboard routes
		api.GET("/dashboard/stats", controllers.GetDashboardStats)

		// Reports routes
		reports := api.Group("/reports")
		{
			reports.GET("/profit-loss", controllers.GetProfitLossReport)
			reports.GET("/income-summary", controllers.GetIncomeSummaryReport)
			reports.GET("/expense-summary", controllers.GetExpenseSummaryReport)
		}
	}

	return r
}
