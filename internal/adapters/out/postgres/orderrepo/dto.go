// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository for the order aggregate,
// converting between domain entities and their relational representation.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are owned rows with a cascading foreign key, so purging an order
// removes its items in the same statement. Timestamps are managed by the
// domain, not by GORM.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerEmail string          `gorm:"not null"`
	Status        int             `gorm:"index"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Items         []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime:false"`
	DeletedAt     *time.Time      `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one line item row belonging to an order.
// Subtotals are not stored; they derive from quantity and unit price.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerEmail: aggregate.CustomerEmail().String(),
		Status:        int(aggregate.Status()),
		Total:         aggregate.Total().Decimal(),
		Items:         items,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		DeletedAt:     aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// The aggregate is rebuilt through RestoreOrder, which re-validates every
// field and recomputes the total from the restored items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		email,
		order.Status(dto.Status),
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.DeletedAt,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, dto.ProductName, dto.Quantity, unitPrice)
}
