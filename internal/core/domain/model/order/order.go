package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when an order would be created without line
	// items. No order may exist with zero items.
	ErrNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate root for a customer purchase. It owns its line
// items, a total computed once at creation, and the mutable status with its
// cancellation metadata.
//
// Order maintains these invariants:
//   - The total amount equals the sum of item subtotals at creation time and
//     is never recomputed afterwards
//   - cancellationStage is set exactly when a cancellation request was raised
//     and not rejected (cancellation_pending, or cancelled by customer
//     approval)
//   - cancelledBy is set exactly when status is cancelled or
//     cancellation_pending
//   - At least one item exists; items are immutable after creation
//
// All mutation goes through Advance, CancelByOperator, RequestCancellation,
// and ResolveCancellation, each of which enforces the state machine and
// leaves the aggregate untouched on rejection.
type Order struct {
	id            kernel.UUID
	orderNumber   string
	customerID    kernel.UUID
	paymentMethod PaymentMethod
	totalAmount   kernel.Money
	status        Status

	cancellationReason string
	cancelledBy        Actor
	cancellationStage  Status

	items []Item

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an Order at checkout. The order number is derived from
// the creation time ("ORD-<unix milliseconds>"), the status starts at
// under_review, and the total amount is computed from the items and frozen.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.Subtotal())
	}

	now := time.Now()
	return &Order{
		id:            id,
		orderNumber:   fmt.Sprintf("ORD-%d", now.UnixMilli()),
		customerID:    customerID,
		paymentMethod: paymentMethod,
		totalAmount:   total,
		status:        UnderReview,
		cancelledBy:   ActorNone,
		items:         items,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, re-validating the
// cancellation-metadata invariants so corrupted rows never become live
// aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	totalAmount kernel.Money,
	status Status,
	cancellationReason string,
	cancelledBy Actor,
	cancellationStage Status,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		paymentMethod.Validate(),
		status.Validate(),
		cancelledBy.Validate(),
	); err != nil {
		return nil, err
	}

	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if err := validateCancellationMetadata(status, cancelledBy, cancellationStage); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		orderNumber:        orderNumber,
		customerID:         customerID,
		paymentMethod:      paymentMethod,
		totalAmount:        totalAmount,
		status:             status,
		cancellationReason: cancellationReason,
		cancelledBy:        cancelledBy,
		cancellationStage:  cancellationStage,
		items:              items,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}, nil
}

// validateCancellationMetadata enforces the coupling between status and the
// cancellation fields.
func validateCancellationMetadata(status Status, cancelledBy Actor, stage Status) error {
	attributed := cancelledBy != ActorNone
	if attributed != (status == Cancelled || status == CancellationPending) {
		return errs.NewValueIsInvalidErrorWithCause("cancelled_by is invalid",
			fmt.Errorf("attribution %q does not match status %s", cancelledBy, status))
	}

	stageSet := stage != Unknown
	// The stage survives an approved customer cancellation: analytics needs
	// to know how far a cancelled order had progressed.
	stageExpected := status == CancellationPending ||
		(status == Cancelled && cancelledBy == ActorCustomer)
	if stageSet != stageExpected {
		return errs.NewValueIsInvalidErrorWithCause("cancellation_stage is invalid",
			fmt.Errorf("stage %q does not match status %s", stage, status))
	}
	if stageSet && !stage.CanRequestCancellation() {
		return errs.NewValueIsInvalidErrorWithCause("cancellation_stage is invalid",
			fmt.Errorf("%s is not a stage a request can be raised from", stage))
	}
	return nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable, time-derived order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// TotalAmount returns the frozen order total.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CancellationReason returns the reason given for the active cancellation,
// or "" when none is recorded.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// CancelledBy returns which party the cancellation is attributed to, or
// ActorNone.
func (o *Order) CancelledBy() Actor { return o.cancelledBy }

// CancellationStage returns the status the order was in when a cancellation
// request was raised, or Unknown when no request is recorded.
func (o *Order) CancellationStage() Status { return o.cancellationStage }

// Items returns the order's line items.
func (o *Order) Items() []Item { return o.items }

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last committed mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Advance performs an operator-driven forward transition to target.
//
// Returns ErrInvalidTransition when the actor is not the operator, when a
// cancellation request is pending, or when target is not the single legal
// successor; ErrTerminalState when the order is completed or cancelled.
// On success only status and updatedAt change.
func (o *Order) Advance(target Status, actor Actor) error {
	if actor != ActorOperator {
		return fmt.Errorf("%w: only the operator may advance an order, not %q",
			ErrInvalidTransition, actor)
	}

	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// CancelByOperator cancels the order outright. Allowed only from
// under_review or preparing, with a mandatory non-empty reason.
func (o *Order) CancelByOperator(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, o.status)
	}
	if !o.status.CanDirectCancel() {
		return fmt.Errorf("%w: operator may cancel directly only before dispatch, not at %s",
			ErrNotCancellable, o.status)
	}

	o.status = Cancelled
	o.cancelledBy = ActorOperator
	o.cancellationReason = reason
	o.touch()
	return nil
}

// RequestCancellation raises a customer cancellation request. The current
// status is captured as the cancellation stage so a rejected request can be
// restored exactly.
//
// The returned flag warns that goods were already dispatched (stage on_way
// or arrived); the request is accepted regardless.
func (o *Order) RequestCancellation(reason string) (lossWarning bool, err error) {
	if strings.TrimSpace(reason) == "" {
		return false, ErrEmptyReason
	}
	if !o.status.CanRequestCancellation() {
		return false, fmt.Errorf("%w: status is %s", ErrNotCancellable, o.status)
	}

	o.cancellationStage = o.status
	o.status = CancellationPending
	o.cancelledBy = ActorCustomer
	o.cancellationReason = reason
	o.touch()
	return o.cancellationStage.CausesDispatchLoss(), nil
}

// ResolveCancellation applies the operator's decision on a pending request.
//
// Approval cancels the order, keeping the customer attribution, the reason,
// and the stage for audit and loss accounting. Rejection restores the status
// captured at request time and clears all cancellation fields; the rejected
// request leaves no other trace.
func (o *Order) ResolveCancellation(approve bool) error {
	if o.status != CancellationPending {
		return fmt.Errorf("%w: status is %s", ErrNotPending, o.status)
	}

	if approve {
		o.status = Cancelled
	} else {
		o.status = o.cancellationStage
		o.cancellationStage = Unknown
		o.cancelledBy = ActorNone
		o.cancellationReason = ""
	}
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}
