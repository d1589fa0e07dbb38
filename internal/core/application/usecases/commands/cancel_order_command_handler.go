package commands

import (
	"context"

	"mezzo/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order directly on behalf of the
// operator. The domain restricts this to orders that have not been
// dispatched; once food is on the way only the negotiated cancellation flow
// applies.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewCancelOrderCommandHandler creates a handler for operator cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command with a compare-and-set write.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := aggregate.Status()
	if err = aggregate.CancelByOperator(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ports.ScopeOrders)
	return nil
}
