package smtpmailer

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfirmation(t *testing.T) {
	email, err := kernel.NewEmail("customer@example.com")
	require.NoError(t, err)

	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Widget", 2, price)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), email, []*order.LineItem{item})
	require.NoError(t, err)

	msg := string(buildConfirmation("orders@example.com", "customer@example.com", aggregate))

	assert.Contains(t, msg, "From: orders@example.com\r\n")
	assert.Contains(t, msg, "To: customer@example.com\r\n")
	assert.Contains(t, msg, "Subject: Order confirmation "+aggregate.ID().String())
	assert.Contains(t, msg, "2 x Widget @ 10.00 = 20.00")
	assert.Contains(t, msg, "Total: 20.00")

	// Headers and body are separated by a blank line.
	assert.Contains(t, msg, "\r\n\r\n")
}

func TestNewMailer_AuthOnlyWithUsername(t *testing.T) {
	withAuth := NewMailer("smtp.example.com", "587", "user", "pass", "orders@example.com")
	assert.NotNil(t, withAuth.auth)

	withoutAuth := NewMailer("localhost", "1025", "", "", "orders@example.com")
	assert.Nil(t, withoutAuth.auth)
}
