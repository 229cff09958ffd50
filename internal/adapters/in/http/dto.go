package http

import (
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Error is the generic error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors carries one message per violated rule, matching the
// multi-error shape produced by domain validation.
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// NewLineItem is the request shape for one line item. The unit price comes
// in as a string so the amount survives the trip without float rounding.
type NewLineItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	CustomerEmail string        `json:"customer_email"`
	Items         []NewLineItem `json:"order_items"`
}

// OrderPatch is the request body for order updates. Absent fields leave the
// corresponding part of the order untouched; an explicit empty item list
// clears the items.
type OrderPatch struct {
	CustomerEmail *string       `json:"customer_email"`
	Items         []NewLineItem `json:"order_items"`
}

// toItemArgs converts request line items into command arguments, rejecting
// unparseable prices before the command layer sees them.
func toItemArgs(items []NewLineItem) ([]commands.LineItemArg, error) {
	if items == nil {
		return nil, nil
	}

	args := make([]commands.LineItemArg, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, err
		}

		args = append(args, commands.LineItemArg{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   price,
		})
	}

	return args, nil
}

// snapshotFromQuery reshapes a query response into the snapshot wire format,
// so reads and command results serialize identically.
func snapshotFromQuery(resp queries.OrderResponse) ports.OrderSnapshot {
	items := make([]ports.LineItemSnapshot, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, ports.LineItemSnapshot{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return ports.OrderSnapshot{
		ID:            resp.ID.String(),
		CustomerEmail: resp.CustomerEmail,
		Status:        resp.Status,
		Total:         resp.Total,
		Items:         items,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
