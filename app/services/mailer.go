package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/utils/calc"
	"github.com/Rakhulsr/go-catalog/app/utils/format"
)

type Mailer struct {
	config configs.SMTPConfig
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg configs.SMTPConfig) *Mailer {
	return &Mailer{
		config: cfg,
		send:   smtp.SendMail,
	}
}

// WithSender replaces the SMTP transport.
func (m *Mailer) WithSender(send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) *Mailer {
	m.send = send
	return m
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	if !m.config.Enabled() {
		return fmt.Errorf("smtp is not configured")
	}

	headers := [][2]string{
		{"From", m.config.From},
		{"To", to},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=\"UTF-8\""},
	}

	var msg strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", h[0], h[1])
	}
	msg.WriteString("\r\n" + htmlBody)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)
	if err := m.send(addr, auth, m.config.From, []string{to}, []byte(msg.String())); err != nil {
		log.Printf("Mailer.SendHTMLEmail: failed to send to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func BuildLowStockEmailBody(items []models.InventoryItem, currency string) string {
	var rows strings.Builder
	for _, item := range items {
		name, value := item.ProductID, "-"
		if item.Product != nil {
			name = item.Product.Name
			value = format.Money(calc.StockValue(item.Product.Price, item.Quantity), currency)
		}
		fmt.Fprintf(&rows,
			`<tr><td>%s</td><td>%s</td><td style="text-align:right">%d</td><td style="text-align:right">%d</td><td style="text-align:right">%d</td><td style="text-align:right">%s</td></tr>`+"\n",
			html.EscapeString(name), html.EscapeString(item.Location),
			item.Quantity, item.MinThreshold, calc.RestockGap(item.Quantity, item.MinThreshold),
			html.EscapeString(value))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Low stock report</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
<h2>%d item(s) at or below their restock threshold</h2>
<table cellpadding="6" style="border-collapse: collapse;">
<tr><th>Product</th><th>Location</th><th>Qty</th><th>Min</th><th>Restock</th><th>Value</th></tr>
%s</table>
</body>
</html>`, len(items), rows.String())
}
