// Package smtpmailer sends order confirmation emails over plain SMTP.
// Sending is best-effort: the calling handler queues it off the request path
// and only logs failures.
package smtpmailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"orders/internal/core/domain/model/order"
)

// Mailer sends confirmation emails through an SMTP relay.
type Mailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewMailer creates a mailer for the relay at host:port. Username may be
// empty for relays that accept unauthenticated mail (local dev, mailcatchers).
func NewMailer(host, port, username, password, from string) *Mailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &Mailer{
		addr: host + ":" + port,
		from: from,
		auth: auth,
	}
}

// SendConfirmation emails the order's customer a summary of what they
// ordered. The context is not threaded through net/smtp; callers bound the
// call with their own timeout expectations.
func (m *Mailer) SendConfirmation(_ context.Context, aggregate *order.Order) error {
	to := aggregate.CustomerEmail().String()
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, buildConfirmation(m.from, to, aggregate))
}

func buildConfirmation(from, to string, aggregate *order.Order) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: Order confirmation %s\r\n", aggregate.ID())
	buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&buf, "Thank you for your order.\r\n\r\nOrder %s\r\n", aggregate.ID())
	for _, item := range aggregate.Items() {
		fmt.Fprintf(&buf, "  %d x %s @ %s = %s\r\n",
			item.Quantity(), item.ProductName(), item.UnitPrice(), item.Subtotal())
	}
	fmt.Fprintf(&buf, "\r\nTotal: %s\r\n", aggregate.Total())

	return buf.Bytes()
}
