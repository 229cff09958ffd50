package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// Mailer sends the order confirmation email on the create path.
// Delivery is asynchronous and best-effort: a send failure must never fail
// the order creation it follows.
type Mailer interface {
	SendConfirmation(ctx context.Context, aggregate *order.Order) error
}
