package commands

import (
	"errors"
	"strings"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/pkg/guard"
)

var ErrRequestCancellationCommandIsNotConstructed = errors.New(
	"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
)

// RequestCancellationCommand represents a customer asking to cancel an
// active order. The request does not cancel anything by itself; it parks the
// order until the operator approves or rejects it.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a cancellation request command.
func NewRequestCancellationCommand(orderID kernel.UUID, reason string) (RequestCancellationCommand, error) {
	cmd := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// OrderID returns the order the customer wants cancelled.
func (c RequestCancellationCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the customer's stated reason.
func (c RequestCancellationCommand) Reason() string { return c.reason }

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return order.ErrEmptyReason
	}
	c.reason = reason
	return nil
}
