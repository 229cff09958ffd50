package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderPurgeJob permanently removes orders that have been soft-deleted for
// longer than the retention window. Runs once an hour; deleted orders stay
// recoverable in the table until then.
type OrderPurgeJob struct {
	handler   commands.PurgeOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderPurgeJob creates the purge job with the given retention window.
func NewOrderPurgeJob(
	handler commands.PurgeOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *OrderPurgeJob {
	return &OrderPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "order_purge_job"),
	}
}

// Start begins the purge job to run at the top of every hour.
func (j *OrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order purge job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order purge job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order purge job started (running hourly)")
	return nil
}

// Stop stops the purge job.
func (j *OrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order purge job stopped")
}
