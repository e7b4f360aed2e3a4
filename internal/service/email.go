package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/domain"
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

func (s *emailService) SendRentalConfirmation(ctx context.Context, email, name, carModel string, price domain.Money, expectedReturn time.Time) error {
	subject := fmt.Sprintf("Rental confirmed: %s", carModel)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s is confirmed for a total of %s.\nPlease return the car by %s.\n\nThank you for renting with us.",
		name, carModel, price, expectedReturn.Format("Monday, 2 Jan 2006"))
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, carModel string, daysLate int, projectedSurcharge domain.Money) error {
	subject := fmt.Sprintf("Overdue rental: %s", carModel)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s is %d day(s) past its expected return date.\nThe late surcharge currently stands at %s and grows daily.\nPlease return the car as soon as possible.",
		name, carModel, daysLate, projectedSurcharge)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
