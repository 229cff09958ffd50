package commands

import (
	"context"
	"time"
)

// PurgeOrdersCommandHandler permanently removes orders whose soft-deletion
// timestamp fell outside the retention window. Run from the scheduled purge
// job, not from any user-facing path.
type PurgeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeOrdersCommandHandler creates a handler for retention purge operations.
func NewPurgeOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeOrdersCommandHandler {
	return PurgeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of orders removed.
// Removal cascades to the orders' line items within the same transaction.
func (h PurgeOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	purged, err := uow.OrderRepository().PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
