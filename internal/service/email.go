package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, toEmail, listingTitle, startDate, endDate string, totalAmountCents int32) error {
	subject := fmt.Sprintf("Your rental of %s is confirmed", listingTitle)
	body := fmt.Sprintf(
		"Your rental of %s from %s to %s is confirmed.\n\nTotal charged: $%.2f.\n\nThe owner's contact details are now available in your rental history.",
		listingTitle, startDate, endDate, float64(totalAmountCents)/100)
	return s.send(toEmail, subject, body)
}

func (s *emailService) SendFreeRentalRequested(ctx context.Context, ownerEmail, listingTitle, startDate, endDate string) error {
	subject := fmt.Sprintf("New rental request for %s", listingTitle)
	body := fmt.Sprintf(
		"Someone would like to borrow %s from %s to %s.\n\nThis is a free listing, so the request waits for your acknowledgment.",
		listingTitle, startDate, endDate)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) send(toEmail, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}
