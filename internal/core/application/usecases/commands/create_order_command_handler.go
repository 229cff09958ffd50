package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the new order and its line items in one transaction, then
// broadcasts an order_created event and queues a best-effort confirmation
// email. Neither the broadcast nor the email is part of the transactional
// guarantee: a failure in either is logged and the created order is still
// returned.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, mailer, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created, total %s", created.ID(), created.Total())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// mailer may be nil when confirmation emails are not configured.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	mailer ports.Mailer,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		mailer:     mailer,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
// Constructs the aggregate in pending status with its derived total, persists
// it transactionally, and on commit emits the order_created event. On any
// failure the transaction is rolled back and nothing is emitted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerEmail(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.broadcast(ctx, aggregate)
	h.queueConfirmationEmail(aggregate)

	return aggregate, nil
}

func (h CreateOrderCommandHandler) broadcast(ctx context.Context, aggregate *order.Order) {
	if err := h.notifier.Broadcast(ctx, ports.EventOrderCreated, ports.NewOrderSnapshot(aggregate)); err != nil {
		h.logger.ErrorContext(ctx, "order event broadcast failed",
			"event", ports.EventOrderCreated,
			"order_id", aggregate.ID().String(),
			"error", err,
		)
	}
}

func (h CreateOrderCommandHandler) queueConfirmationEmail(aggregate *order.Order) {
	if h.mailer == nil {
		return
	}

	// Detached from the request context: the email outlives the request
	// and its failure must not surface to the caller.
	go func() {
		if err := h.mailer.SendConfirmation(context.Background(), aggregate); err != nil {
			h.logger.Error("confirmation email failed",
				"order_id", aggregate.ID().String(),
				"error", err,
			)
		}
	}()
}
