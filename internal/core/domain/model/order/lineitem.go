package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line belonging to exactly one Order.
//
// LineItem follows these invariants:
//   - Must have a valid unique identifier
//   - Product name is required and non-empty
//   - Quantity is a strictly positive integer
//   - Unit price is a non-negative monetary amount
//
// The subtotal (quantity × unit price) is derived, never stored.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productName is the human-readable product description
	productName string

	// quantity is the number of units ordered (always > 0)
	quantity int

	// unitPrice is the non-negative price per unit
	unitPrice kernel.Money

	// isConstructed ensures the item was created via NewLineItem
	isConstructed bool
}

// NewLineItem creates a LineItem with validation. This is the only way to
// create a valid LineItem; all field constraints are checked here so invalid
// item data never reaches the aggregator or persistence.
func NewLineItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*LineItem, error) {
	item := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistence.
// The same validation as NewLineItem applies.
func RestoreLineItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*LineItem, error) {
	return NewLineItem(id, productName, quantity, unitPrice)
}

// Validate ensures the LineItem instance was properly constructed through
// NewLineItem. Returns ErrLineItemIsNotConstructed otherwise.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ProductName returns the product description.
func (li *LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the number of units ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal returns quantity × unit price, computed on demand with exact
// decimal arithmetic.
func (li *LineItem) Subtotal() kernel.Money {
	return li.unitPrice.MulInt(li.quantity)
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	li.productName = productName
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid", err)
	}
	li.unitPrice = unitPrice
	return nil
}
