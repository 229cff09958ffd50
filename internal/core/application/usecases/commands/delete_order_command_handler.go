package commands

import (
	"context"
)

// DeleteOrderCommandHandler soft-deletes orders. No event is broadcast:
// deletion is an administrative action, not part of the order lifecycle.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Loads the order (ObjectNotFoundError if absent or already deleted), stamps
// its deleted_at, and persists. The order's items are kept until purge.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.MarkDeleted()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
