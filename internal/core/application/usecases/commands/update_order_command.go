package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change an existing order's
// customer email and/or replace its full line item set, independent of the
// order's lifecycle status. At least one of the two patches must be present.
//
// A nil items slice means "leave the items alone"; an empty non-nil slice
// clears them.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerEmail *kernel.Email
	items         []*order.LineItem
	replaceItems  bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order.
// customerEmail may be nil to keep the current address; items may be nil to
// keep the current item set. Passing neither is rejected.
func NewUpdateOrderCommand(orderID kernel.UUID, customerEmail *string, items []LineItemArg) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if customerEmail == nil && items == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerEmail(customerEmail),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerEmail returns the new contact address, or nil when unchanged.
func (c UpdateOrderCommand) CustomerEmail() *kernel.Email {
	return c.customerEmail
}

// ReplacesItems reports whether the command carries a new item set.
func (c UpdateOrderCommand) ReplacesItems() bool {
	return c.replaceItems
}

// Items returns the replacement line items. Only meaningful when
// ReplacesItems is true.
func (c UpdateOrderCommand) Items() []*order.LineItem {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerEmail(customerEmail *string) error {
	if customerEmail == nil {
		return nil
	}

	email, err := kernel.NewEmail(*customerEmail)
	if err != nil {
		return err
	}

	c.customerEmail = &email
	return nil
}

func (c *UpdateOrderCommand) setItems(args []LineItemArg) error {
	if args == nil {
		return nil
	}

	items, err := buildLineItems(args)
	if err != nil {
		return err
	}

	c.items = items
	c.replaceItems = true
	return nil
}
