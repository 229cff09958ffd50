package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderCommandHandler applies contact and line item patches to orders.
// Like transitions, the patch runs against a row-level-locked read so a
// concurrent advance cannot interleave with the item replacement.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order patch operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_handler"),
	}
}

// Handle processes the patch command.
// Loads the order (ObjectNotFoundError if absent), applies the email and/or
// item changes regardless of the order's status, recomputes the total,
// persists, and after commit broadcasts order_updated. On any failure the
// transaction rolls back and no event is emitted.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if email := cmd.CustomerEmail(); email != nil {
		if err = aggregate.ChangeCustomerEmail(*email); err != nil {
			return nil, err
		}
	}

	if cmd.ReplacesItems() {
		if err = aggregate.ReplaceItems(cmd.Items()); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.broadcast(ctx, aggregate)

	return aggregate, nil
}

func (h UpdateOrderCommandHandler) broadcast(ctx context.Context, aggregate *order.Order) {
	if err := h.notifier.Broadcast(ctx, ports.EventOrderUpdated, ports.NewOrderSnapshot(aggregate)); err != nil {
		h.logger.ErrorContext(ctx, "order event broadcast failed",
			"event", ports.EventOrderUpdated,
			"order_id", aggregate.ID().String(),
			"error", err,
		)
	}
}
