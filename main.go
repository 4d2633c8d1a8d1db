package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledgerbook-backend/config"
	"ledgerbook-backend/models"
	"ledgerbook-backend/routes"
	"ledgerbook-backend/services"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Vendor{},
		&models.Currency{},
		&models.Tax{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceSequence{},
		&models.Payment{},
		&models.ExpenseCategory{},
		&models.Expense{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	config.SeedDefaults()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB)
	scheduler := reminders.StartScheduler()

	r := routes.SetupRouter()
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
