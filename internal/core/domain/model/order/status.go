package order

import (
	"errors"
	"fmt"

	"mezzo/internal/pkg/errs"
)

// Sentinel errors for rejected lifecycle operations. Every rejection names
// the exact rule that was violated; callers classify with errors.Is and no
// rejected operation mutates stored state.
var (
	// ErrInvalidTransition is returned when the target status is not the
	// single legal successor of the current status for the acting party.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTerminalState is returned when an operation is attempted on a
	// completed or cancelled order.
	ErrTerminalState = errors.New("order is in a terminal state")

	// ErrNotCancellable is returned when a cancellation request is raised on
	// an order that is terminal or already has a pending request.
	ErrNotCancellable = errors.New("order cannot be cancelled")

	// ErrNotPending is returned when a cancellation resolution is attempted
	// on an order without a pending cancellation request.
	ErrNotPending = errors.New("order has no pending cancellation request")

	// ErrEmptyReason is returned when a cancellation is attempted without a
	// non-empty reason.
	ErrEmptyReason = errors.New("cancellation reason is required")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	under_review ──> preparing ──> on_way ──> arrived ──> completed
//	      │               │           │           │
//	      └───────────────┴─────┬─────┴───────────┘
//	                            ▼
//	                 cancellation_pending ──> cancelled
//	                            │                 ▲
//	     (rejected: back to     │                 │ (operator direct cancel,
//	      the captured stage) ──┘                 │  under_review/preparing only)
//
// completed and cancelled are terminal. cancellation_pending is transient and
// resolved only by an operator decision.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// UnderReview is the initial status assigned at checkout.
	UnderReview

	// Preparing indicates the kitchen accepted the order.
	Preparing

	// OnWay indicates the order was dispatched for delivery.
	OnWay

	// Arrived indicates the courier reached the customer.
	Arrived

	// Completed indicates the order was delivered and paid. Terminal.
	Completed

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled

	// CancellationPending indicates a customer cancellation request is
	// awaiting operator resolution.
	CancellationPending
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		UnderReview:         "under_review",
		Preparing:           "preparing",
		OnWay:               "on_way",
		Arrived:             "arrived",
		Completed:           "completed",
		Cancelled:           "cancelled",
		CancellationPending: "cancellation_pending",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown values, including "unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire representation, e.g. "under_review".
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are legal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// next returns the single legal forward successor, or Unknown when the
// status has none (terminal or cancellation_pending).
func (s Status) next() Status {
	switch s {
	case UnderReview:
		return Preparing
	case Preparing:
		return OnWay
	case OnWay:
		return Arrived
	case Arrived:
		return Completed
	default:
		return Unknown
	}
}

// AdvanceTo validates the operator-driven forward transition to target and
// returns the new status.
//
// Returns ErrTerminalState if the current status is terminal, and
// ErrInvalidTransition if target is not the single legal successor or a
// cancellation request is pending.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s", ErrTerminalState, s)
	}
	if s == CancellationPending {
		return Unknown, fmt.Errorf(
			"%w: %s must be resolved before the order can advance", ErrInvalidTransition, s)
	}
	if next := s.next(); target != next {
		return Unknown, fmt.Errorf(
			"%w: %s -> %s (next legal status is %s)", ErrInvalidTransition, s, target, next)
	}
	return target, nil
}

// CanDirectCancel reports whether an operator may cancel outright, which is
// allowed only before dispatch.
func (s Status) CanDirectCancel() bool {
	return s == UnderReview || s == Preparing
}

// CanRequestCancellation reports whether a customer may raise a cancellation
// request from this status.
func (s Status) CanRequestCancellation() bool {
	switch s {
	case UnderReview, Preparing, OnWay, Arrived:
		return true
	default:
		return false
	}
}

// CausesDispatchLoss reports whether cancelling at this stage loses goods
// already dispatched. Advisory only; the request is still accepted.
func (s Status) CausesDispatchLoss() bool {
	return s == OnWay || s == Arrived
}
