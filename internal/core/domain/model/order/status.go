package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error for lifecycle transitions that
// are not present in the transition table.
var ErrInvalidTransition = errors.New("invalid transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──process──> Processing ──complete──> Completed
//	   │                     │
//	 cancel               cancel
//	   │                     │
//	   └─────> Cancelled <───┘
//
// Completed and Cancelled are terminal: no transitions leave either state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Processing indicates the order is being fulfilled.
	Processing

	// Completed indicates the order has been fulfilled.
	// This is a terminal state.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state.
	Cancelled
)

// Event names a lifecycle transition trigger.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// EventProcess moves a pending order into processing.
	EventProcess

	// EventComplete finishes a processing order.
	EventComplete

	// EventCancel cancels a pending or processing order.
	EventCancel
)

// transitions is the complete legal state graph. Any (status, event) pair
// absent from this table is an invalid transition.
var transitions = map[Status]map[Event]Status{
	Pending: {
		EventProcess: Processing,
		EventCancel:  Cancelled,
	},
	Processing: {
		EventComplete: Completed,
		EventCancel:   Cancelled,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Processing, Completed, and Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, as persisted and serialized.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the status reached by applying event to the current status.
// It only consults the transition table; it mutates nothing and knows nothing
// about persistence, money, or notification.
//
// Returns an InvalidTransitionError carrying the current status and the
// attempted event when the pair is not in the table.
func (s Status) Next(event Event) (Status, error) {
	if next, ok := transitions[s][event]; ok {
		return next, nil
	}
	return Unknown, &InvalidTransitionError{From: s, Event: event}
}

// InvalidTransitionError reports an illegal lifecycle transition attempt.
type InvalidTransitionError struct {
	From  Status
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot apply event %q to order in %q status", e.Event, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:  "unknown",
		EventProcess:  "process",
		EventComplete: "complete",
		EventCancel:   "cancel",
	}
}

// EventFromString parses a transition trigger name ("process", "complete",
// "cancel") into an Event. Returns an error for anything else.
func EventFromString(s string) (Event, error) {
	for event, name := range getEventStrings() {
		if event != EventUnknown && name == s {
			return event, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("%q is not a valid order event", s))
}

// String returns the lowercase name of the event.
// Implements fmt.Stringer and is safe on any Event value.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "unknown"
}
