package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ledgerbook-backend/models"
	"ledgerbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends SMS notices for invoices past their due date.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendOverdueReminders)

	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendOverdueReminders finds unpaid invoices past their due date and
// sends one SMS per invoice, at most once a week.
func (s *ReminderService) SendOverdueReminders() {
	log.Println("Starting overdue reminder processing...")

	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || os.Getenv("TWILIO_PHONE_NUMBER") == "" {
		log.Println("Twilio is not configured, skipping reminder run")
		return
	}

	var invoices []models.Invoice
	err := s.db.Preload("Customer").Preload("Currency").
		Where("due_date < ? AND status NOT IN ?",
			utils.BeginningOfDay(time.Now()), []string{"PAID", "CANCELLED"}).
		Find(&invoices).Error
	if err != nil {
		log.Printf("Failed to fetch overdue invoices: %v", err)
		return
	}

	for _, invoice := range invoices {
		s.processInvoice(invoice)
	}

	log.Println("Overdue reminder processing completed")
}

func (s *ReminderService) processInvoice(invoice models.Invoice) {
	if invoice.Customer.Phone == "" {
		return
	}

	// Skip if we already nagged this customer within the last week.
	var recent int64
	s.db.Model(&models.ReminderLog{}).
		Where("invoice_id = ? AND sent_at > ?", invoice.ID, time.Now().AddDate(0, 0, -7)).
		Count(&recent)
	if recent > 0 {
		return
	}

	outstanding := invoice.Total.Sub(invoice.PaidAmount)
	message := fmt.Sprintf(
		"Hi %s, invoice %s was due on %s. Outstanding balance: %s %s. Please arrange payment.",
		invoice.Customer.Name,
		invoice.InvoiceNumber,
		invoice.DueDate.Format("2006-01-02"),
		outstanding.StringFixed(2),
		invoice.Currency.Code,
	)

	channel := "sms"
	to := invoice.Customer.Phone
	if strings.HasPrefix(to, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder for invoice %s: %v", invoice.InvoiceNumber, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for invoice %s, SID: %s", invoice.InvoiceNumber, *resp.Sid)
	}

	reminderLog := models.ReminderLog{
		InvoiceID:    invoice.ID,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for invoice %s: %v", invoice.InvoiceNumber, err)
	}
}
