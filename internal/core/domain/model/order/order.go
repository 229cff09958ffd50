package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a commercial order in the system. It is the aggregate root
// that owns the order's line items and manages the lifecycle from creation
// through processing to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer email
//   - Status only changes through the lifecycle state machine
//   - Total is always derived from the current line items, never set directly
//   - An order with zero line items has a total of zero
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerEmail is the validated contact address of the customer
	customerEmail kernel.Email

	// status is the current state in the order lifecycle
	status Status

	// total is the derived sum of line item subtotals
	total kernel.Money

	// items are the line items owned by this order
	items []*LineItem

	// createdAt is set once at construction and never changes
	createdAt time.Time

	// updatedAt is bumped on every mutation
	updatedAt time.Time

	// deletedAt marks soft deletion; a non-nil value excludes the
	// order from active listings while retaining the row
	deletedAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the given line items.
// The item collection may be empty; each present item must have been built
// through NewLineItem. The total is computed immediately, so a freshly
// constructed order never carries a stale total.
func NewOrder(id kernel.UUID, customerEmail kernel.Email, items []*LineItem) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		total:         kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.RecalculateTotal()
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// The status must be a valid lifecycle state. The total is recomputed from
// the restored items rather than trusted, so a read can never observe a
// total that disagrees with the item set.
func RestoreOrder(
	id kernel.UUID,
	customerEmail kernel.Email,
	status Status,
	items []*LineItem,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
		total:         kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.RecalculateTotal()
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerEmail returns the customer contact address.
func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the derived monetary total of the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Items returns the line items owned by this order.
func (o *Order) Items() []*LineItem {
	return o.items
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-deletion timestamp, or nil for an active order.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// Advance applies a lifecycle event to the order through the state machine.
//
// If the transition is legal the status changes, the total is recomputed, and
// the update timestamp is bumped. If it is not, an InvalidTransitionError is
// returned and the order is left untouched.
func (o *Order) Advance(event Event) error {
	next, err := o.status.Next(event)
	if err != nil {
		return err
	}

	o.status = next
	o.RecalculateTotal()
	o.touch()
	return nil
}

// ChangeCustomerEmail replaces the customer contact address.
func (o *Order) ChangeCustomerEmail(customerEmail kernel.Email) error {
	if err := o.setCustomerEmail(customerEmail); err != nil {
		return err
	}

	o.touch()
	return nil
}

// ReplaceItems swaps the full line item set for a new one, regardless of the
// order's status, and recomputes the total. The new collection may be empty.
func (o *Order) ReplaceItems(items []*LineItem) error {
	if err := o.setItems(items); err != nil {
		return err
	}

	o.RecalculateTotal()
	o.touch()
	return nil
}

// MarkDeleted soft-deletes the order. Idempotent: the deletion timestamp is
// only set once.
func (o *Order) MarkDeleted() {
	if o.deletedAt != nil {
		return
	}
	now := time.Now().UTC()
	o.deletedAt = &now
	o.touch()
}

// RecalculateTotal recomputes the derived total from the current line items.
// Mutating methods call this themselves; it is exported so the service layer
// can name recomputation as an explicit step after any committing mutation.
func (o *Order) RecalculateTotal() {
	o.total = CalculateTotal(o.items)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}
	o.customerEmail = customerEmail
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
