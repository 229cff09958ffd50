package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// Event types broadcast by the lifecycle command handlers. The vocabulary
// follows the order's lifecycle verbs; subscribers key on these strings.
const (
	EventOrderCreated    = "order_created"
	EventOrderProcessing = "order_processing"
	EventOrderCompleted  = "order_completed"
	EventOrderCancelled  = "order_cancelled"
	EventOrderUpdated    = "order_updated"
)

// Notifier broadcasts order snapshots tagged with an event type to
// subscribers. Broadcasting is fire-and-forget from the service's point of
// view: a failed broadcast is logged, never rolled into the outcome of the
// order mutation that triggered it.
type Notifier interface {
	Broadcast(ctx context.Context, eventType string, snapshot OrderSnapshot) error
}

// OrderSnapshot is a serialized, read-only view of an order and its items,
// shaped for notification subscribers.
type OrderSnapshot struct {
	ID            string             `json:"id"`
	CustomerEmail string             `json:"customer_email"`
	Status        string             `json:"status"`
	Total         string             `json:"total"`
	Items         []LineItemSnapshot `json:"order_items"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// LineItemSnapshot is the read-only view of one line item, including the
// derived subtotal.
type LineItemSnapshot struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// NewOrderSnapshot builds a snapshot from an order aggregate.
func NewOrderSnapshot(aggregate *order.Order) OrderSnapshot {
	items := make([]LineItemSnapshot, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemSnapshot{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return OrderSnapshot{
		ID:            aggregate.ID().String(),
		CustomerEmail: aggregate.CustomerEmail().String(),
		Status:        aggregate.Status().String(),
		Total:         aggregate.Total().String(),
		Items:         items,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}
