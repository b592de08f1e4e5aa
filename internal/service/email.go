package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed notifier. An empty API key
// yields a no-op sender for local development.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name, vehicleName string, start, end time.Time) error {
	subject := fmt.Sprintf("Booking confirmed: %s", vehicleName)
	plainText := fmt.Sprintf("Hello %s,\n\nYour booking of %s from %s to %s is confirmed.",
		name, vehicleName, start.Format(time.RFC1123), end.Format(time.RFC1123))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking Confirmed</h2>
				<p>Hello %s,</p>
				<p>Your booking of <strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong> is confirmed.</p>
			</body>
		</html>
	`, name, vehicleName, start.Format(time.RFC1123), end.Format(time.RFC1123))

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendBookingCancellation(ctx context.Context, email, name, vehicleName string, start, end time.Time) error {
	subject := fmt.Sprintf("Booking cancelled: %s", vehicleName)
	plainText := fmt.Sprintf("Hello %s,\n\nYour booking of %s from %s to %s has been cancelled.",
		name, vehicleName, start.Format(time.RFC1123), end.Format(time.RFC1123))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking Cancelled</h2>
				<p>Hello %s,</p>
				<p>Your booking of <strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong> has been cancelled.</p>
			</body>
		</html>
	`, name, vehicleName, start.Format(time.RFC1123), end.Format(time.RFC1123))

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	if s.apiKey == "" {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

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
