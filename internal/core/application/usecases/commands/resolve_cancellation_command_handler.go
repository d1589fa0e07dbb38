package commands

import (
	"context"

	"mezzo/internal/core/ports"
)

// ResolveCancellationCommandHandler settles a pending cancellation request.
// Approval cancels the order and keeps the captured stage for loss
// accounting; rejection restores the order to the exact stage it was at when
// the customer asked.
type ResolveCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewResolveCancellationCommandHandler creates a handler for cancellation
// resolutions.
func NewResolveCancellationCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) ResolveCancellationCommandHandler {
	return ResolveCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the resolution with a compare-and-set write.
func (h *ResolveCancellationCommandHandler) Handle(ctx context.Context, cmd ResolveCancellationCommand) error {
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
	if err = aggregate.ResolveCancellation(cmd.Approve()); err != nil {
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
