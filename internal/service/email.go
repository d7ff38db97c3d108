package service

import (
	"context"
	"fmt"
	"strings"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/pricing"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type invoiceService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewInvoiceService sends settlement invoices through SendGrid.
func NewInvoiceService(apiKey, fromEmail, fromName string) InvoiceService {
	return &invoiceService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *invoiceService) SendInvoice(ctx context.Context, client *domain.Client, order *domain.Order, adj pricing.Adjustment) error {
	logger.EnterMethod("InvoiceService.SendInvoice", "orderID", order.ID)

	if client.Email == "" {
		logger.ExitMethod("InvoiceService.SendInvoice", "skipped", "no email on file")
		return nil
	}

	subject := fmt.Sprintf("Rental invoice %s", order.ID)
	plainText, htmlContent := renderInvoice(client, order, adj)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(client.Name, client.Email)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "orderID", order.ID)
	sg := sendgrid.NewSendClient(s.apiKey)
	response, err := sg.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		logger.ExitMethodWithError("InvoiceService.SendInvoice", err)
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		logger.ExitMethodWithError("InvoiceService.SendInvoice", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil)
	logger.ExitMethod("InvoiceService.SendInvoice", "orderID", order.ID)
	return nil
}

func renderInvoice(client *domain.Client, order *domain.Order, adj pricing.Adjustment) (string, string) {
	var plain strings.Builder
	var html strings.Builder

	fmt.Fprintf(&plain, "Dear %s,\n\nYour rental order %s has been settled.\n\n", client.Name, order.ID)
	html.WriteString("<html><body>")
	fmt.Fprintf(&html, "<h2>Rental Invoice</h2><p>Dear %s,</p><p>Your rental order <strong>%s</strong> has been settled.</p>", client.Name, order.ID)

	html.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Item</th><th>Qty</th><th>Unit price</th></tr>")
	for _, item := range order.Items {
		fmt.Fprintf(&plain, "  %s x%d @ %s\n", item.ProductName, item.Quantity, formatAmount(item.UnitPriceCents))
		fmt.Fprintf(&html, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>", item.ProductName, item.Quantity, formatAmount(item.UnitPriceCents))
	}
	html.WriteString("</table>")

	fmt.Fprintf(&plain, "\nChargeable days: %d\nFinal amount: %s\n", adj.ChargeableDays, formatAmount(adj.AdjustedAmountCents))
	fmt.Fprintf(&html, "<p>Chargeable days: %d</p><p>Final amount: <strong>%s</strong></p>", adj.ChargeableDays, formatAmount(adj.AdjustedAmountCents))

	switch adj.Direction() {
	case "refund":
		fmt.Fprintf(&plain, "Refund due: %s\n", formatAmount(-adj.DifferenceCents))
		fmt.Fprintf(&html, "<p>Refund due: %s</p>", formatAmount(-adj.DifferenceCents))
	case "extra_charge":
		fmt.Fprintf(&plain, "Additional charge: %s\n", formatAmount(adj.DifferenceCents))
		fmt.Fprintf(&html, "<p>Additional charge: %s</p>", formatAmount(adj.DifferenceCents))
	}

	plain.WriteString("\nThank you for your business.\n")
	html.WriteString("<p>Thank you for your business.</p></body></html>")

	return plain.String(), html.String()
}
