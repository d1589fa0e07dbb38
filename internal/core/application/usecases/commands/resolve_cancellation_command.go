package commands

import (
	"errors"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/pkg/guard"
)

var ErrResolveCancellationCommandIsNotConstructed = errors.New(
	"ResolveCancellationCommand must be created via NewResolveCancellationCommand constructor",
)

// ResolveCancellationCommand represents the operator's decision on a pending
// cancellation request: approve it and cancel the order, or reject it and
// resume the lifecycle where it stopped.
type ResolveCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

// NewResolveCancellationCommand creates a resolution command.
func NewResolveCancellationCommand(orderID kernel.UUID, approve bool) (ResolveCancellationCommand, error) {
	cmd := ResolveCancellationCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ResolveCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveCancellationCommand) Validate() error {
	return c.guard.Validate(ErrResolveCancellationCommandIsNotConstructed)
}

// OrderID returns the order with the pending request.
func (c ResolveCancellationCommand) OrderID() kernel.UUID { return c.orderID }

// Approve reports whether the operator approved the request.
func (c ResolveCancellationCommand) Approve() bool { return c.approve }

func (c *ResolveCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
