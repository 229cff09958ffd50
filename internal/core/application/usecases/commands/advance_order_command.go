package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an existing order through
// its lifecycle by applying one of the named events: process, complete, or
// cancel.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, order.EventProcess)
//	if err != nil {
//	    return err
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // the order was not in a state that allows this event
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	event   order.Event

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to apply a lifecycle event to an
// order. The order ID must be valid and the event one of the named triggers.
func NewAdvanceOrderCommand(orderID kernel.UUID, event order.Event) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEvent(event),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Event returns the lifecycle event to apply.
func (c AdvanceOrderCommand) Event() order.Event {
	return c.event
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setEvent(event order.Event) error {
	if _, err := order.EventFromString(event.String()); err != nil {
		return err
	}

	c.event = event
	return nil
}
