package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches one active order by ID from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when no active order has the given ID;
// soft-deleted orders are invisible here.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email,
			status,
			total,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().Bytes()).Row()

	var (
		id                   uuid.UUID
		customerEmail        string
		status               int
		total                decimal.Decimal
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &customerEmail, &status, &total, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := h.loadItems(ctx, id)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:            orderID,
		CustomerEmail: customerEmail,
		Status:        order.Status(status).String(),
		Total:         total.StringFixed(2),
		Items:         items,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID uuid.UUID) ([]LineItemResponse, error) {
	items := make([]LineItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			productName string
			quantity    int
			unitPrice   decimal.Decimal
		)

		if err = rows.Scan(&id, &productName, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, LineItemResponse{
			ID:          itemID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   unitPrice.StringFixed(2),
			Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))).StringFixed(2),
		})
	}

	return items, rows.Err()
}
