package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemArg carries the raw line item fields of a create or update request.
// Validation happens in the command constructor, which turns each arg into a
// domain LineItem or collects the field errors.
type LineItemArg struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateOrderCommand represents a request to create a new order in pending
// status with an initial, possibly empty, set of line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "a@b.com", []LineItemArg{
//	    {ProductName: "Widget", Quantity: 2, UnitPrice: decimal.NewFromFloat(10.00)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerEmail kernel.Email
	items         []*order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The order ID must be valid and the customer email well-formed; every line
// item arg must carry a non-empty product name, a positive quantity, and a
// non-negative unit price. All field errors are joined into one error so the
// caller can report the complete message list.
func NewCreateOrderCommand(orderID kernel.UUID, customerEmail string, items []LineItemArg) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerEmail(customerEmail),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerEmail returns the validated customer contact address.
func (c CreateOrderCommand) CustomerEmail() kernel.Email {
	return c.customerEmail
}

// Items returns the validated line items for the new order.
func (c CreateOrderCommand) Items() []*order.LineItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail string) error {
	email, err := kernel.NewEmail(customerEmail)
	if err != nil {
		return err
	}

	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setItems(args []LineItemArg) error {
	items, err := buildLineItems(args)
	if err != nil {
		return err
	}

	c.items = items
	return nil
}

// buildLineItems converts raw args into validated domain line items,
// joining the field errors of every invalid arg.
func buildLineItems(args []LineItemArg) ([]*order.LineItem, error) {
	items := make([]*order.LineItem, 0, len(args))
	var errList []error

	for _, arg := range args {
		unitPrice, err := kernel.NewMoney(arg.UnitPrice)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		item, err := order.NewLineItem(kernel.NewUUID(), arg.ProductName, arg.Quantity, unitPrice)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		items = append(items, item)
	}

	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return items, nil
}
