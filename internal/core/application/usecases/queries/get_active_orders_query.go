package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that has not been soft-deleted,
// newest first, with full line item sets.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to list all active orders.
// This is a parameterless query; soft-deleted orders are excluded.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderResponse represents one order in a query result. Decimal amounts are
// rendered with two fractional digits, matching the wire format.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerEmail string
	Status        string
	Total         string
	Items         []LineItemResponse
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LineItemResponse represents one line item within an order query result.
type LineItemResponse struct {
	ID          kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   string
	Subtotal    string
}
