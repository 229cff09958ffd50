package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrPurgeOrdersCommandIsNotConstructed = errors.New(
	"PurgeOrdersCommand must be created via NewPurgeOrdersCommand constructor",
)

// PurgeOrdersCommand represents a request to permanently remove orders that
// were soft-deleted longer ago than the retention window.
type PurgeOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeOrdersCommand creates a purge command with the given retention
// window. Retention must be positive.
func NewPurgeOrdersCommand(retention time.Duration) (PurgeOrdersCommand, error) {
	cmd := PurgeOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeOrdersCommandIsNotConstructed if validation fails.
func (c PurgeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrdersCommandIsNotConstructed)
}

// Retention returns how long soft-deleted orders are kept before purging.
func (c PurgeOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("retention", fmt.Errorf("%s is not greater than 0", retention))
	}

	c.retention = retention
	return nil
}
