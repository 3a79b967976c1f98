package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"dressrent-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendOverdueDigest(ctx context.Context, toEmail string, entries []OverdueEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var plain strings.Builder
	var html strings.Builder
	fmt.Fprintf(&plain, "%d rental(s) are past their due date:\n\n", len(entries))
	html.WriteString("<html><body><h2>Overdue rentals</h2><ul>")
	for _, entry := range entries {
		fmt.Fprintf(&plain, "- %s: %s (due %s)\n", entry.CustomerName, entry.ItemSummary, entry.DueDate.Format("02/01/2006"))
		fmt.Fprintf(&html, "<li><strong>%s</strong>: %s (due %s)</li>", entry.CustomerName, entry.ItemSummary, entry.DueDate.Format("02/01/2006"))
	}
	html.WriteString("</ul></body></html>")

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", toEmail)
	subject := fmt.Sprintf("Overdue rentals: %d outstanding", len(entries))
	message := mail.NewSingleEmail(from, subject, to, plain.String(), html.String())

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send overdue digest: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Info("Overdue digest sent", "to", toEmail, "entries", len(entries))
	return nil
}
