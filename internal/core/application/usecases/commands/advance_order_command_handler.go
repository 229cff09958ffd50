package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// AdvanceOrderCommandHandler applies lifecycle transitions to orders.
//
// The order row is loaded under a row-level lock inside the same transaction
// that writes the new status, so two concurrent advance calls on the same
// order serialize at the storage layer: the state machine check always runs
// against the committed status, never a stale read.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle transition operations.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle processes the transition command.
// Loads the order (ObjectNotFoundError if absent), asks the state machine to
// apply the event (InvalidTransitionError leaves the order untouched),
// recomputes the total, persists, and after commit broadcasts the event named
// after the new state. On any failure the transaction rolls back and no event
// is emitted.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Advance(cmd.Event()); err != nil {
		return nil, err
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

func (h AdvanceOrderCommandHandler) broadcast(ctx context.Context, aggregate *order.Order) {
	eventType := broadcastEventType(aggregate.Status())
	if err := h.notifier.Broadcast(ctx, eventType, ports.NewOrderSnapshot(aggregate)); err != nil {
		h.logger.ErrorContext(ctx, "order event broadcast failed",
			"event", eventType,
			"order_id", aggregate.ID().String(),
			"error", err,
		)
	}
}

// broadcastEventType maps a post-transition status to its event type.
func broadcastEventType(status order.Status) string {
	switch status {
	case order.Processing:
		return ports.EventOrderProcessing
	case order.Completed:
		return ports.EventOrderCompleted
	case order.Cancelled:
		return ports.EventOrderCancelled
	default:
		return ports.EventOrderUpdated
	}
}
