package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists non-deleted orders from the database.
// Reads bypass the domain model: rows are projected straight into response
// structs.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders, newest first.
// Soft-deleted orders and their items are excluded.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)
	orderIdx := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email,
			status,
			total,
			created_at,
			updated_at
		FROM orders
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                   uuid.UUID
			customerEmail        string
			status               int
			total                decimal.Decimal
			createdAt, updatedAt time.Time
		)

		if err = rows.Scan(&id, &customerEmail, &status, &total, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderIdx[id] = len(orders)
		orders = append(orders, OrderResponse{
			ID:            orderID,
			CustomerEmail: customerEmail,
			Status:        order.Status(status).String(),
			Total:         total.StringFixed(2),
			Items:         make([]LineItemResponse, 0),
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, orderIdx); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetActiveOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []OrderResponse,
	orderIdx map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.product_name,
			i.quantity,
			i.unit_price
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.deleted_at IS NULL
		ORDER BY i.id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, orderID uuid.UUID
			productName string
			quantity    int
			unitPrice   decimal.Decimal
		)

		if err = rows.Scan(&id, &orderID, &productName, &quantity, &unitPrice); err != nil {
			return err
		}

		idx, ok := orderIdx[orderID]
		if !ok {
			continue
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}

		orders[idx].Items = append(orders[idx].Items, LineItemResponse{
			ID:          itemID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   unitPrice.StringFixed(2),
			Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))).StringFixed(2),
		})
	}

	return rows.Err()
}
