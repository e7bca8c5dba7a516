package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"krishisanjivni-backend/internal/logger"
)

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "Send", "subject", subject)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "Send", nil)
	return nil
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, email, name, itemName string, amount float64, paymentID string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of Rs. %.2f for %s.\nPayment reference: %s\n\nThank you,\nThe KrishiSanjivni Team", name, amount, itemName, paymentID)
	return s.send(ctx, email, name, "Payment received", body)
}

func (s *emailService) SendBookingAccepted(ctx context.Context, email, name, itemName string, amount float64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s has been accepted.\nAmount due: Rs. %.2f. Please complete the payment from your profile to confirm the booking.\n\nThank you,\nThe KrishiSanjivni Team", name, itemName, amount)
	return s.send(ctx, email, name, "Booking accepted", body)
}

func (s *emailService) SendBookingRejected(ctx context.Context, email, name, itemName, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your booking for %s could not be accepted.", name, itemName)
	if reason != "" {
		body += fmt.Sprintf("\nReason: %s", reason)
	}
	body += "\n\nThank you,\nThe KrishiSanjivni Team"
	return s.send(ctx, email, name, "Booking update", body)
}

func (s *emailService) SendPaymentReminder(ctx context.Context, email, name, itemName string, amount float64) error {
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your accepted booking for %s is awaiting payment of Rs. %.2f.\nPlease complete the payment from your profile to confirm the booking.\n\nThank you,\nThe KrishiSanjivni Team", name, itemName, amount)
	return s.send(ctx, email, name, "Payment pending for your booking", body)
}
