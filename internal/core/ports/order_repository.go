package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the order row together with its owned line items;
// line items are never touched outside their parent order's transaction.
type OrderRepository interface {
	// Add persists a new order aggregate and its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its stored line item set with the aggregate's current one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but locks its row for the
	// duration of the surrounding transaction, serializing concurrent
	// status read-modify-write cycles on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// PurgeDeletedBefore permanently removes orders (and their items)
	// that were soft-deleted before the cutoff. Returns the number of
	// orders removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
