package commands

import (
	"context"

	"mezzo/internal/core/ports"
)

// RequestCancellationResult reports the outcome of a cancellation request.
// LossWarning is set when the order was already dispatched, so approving the
// request would write off the order total.
type RequestCancellationResult struct {
	LossWarning bool
}

// RequestCancellationCommandHandler parks an active order in the
// cancellation-pending state on the customer's behalf, capturing the stage
// it was at so a later rejection can restore it exactly.
type RequestCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewRequestCancellationCommandHandler creates a handler for customer
// cancellation requests.
func NewRequestCancellationCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation request with a compare-and-set write.
func (h *RequestCancellationCommandHandler) Handle(
	ctx context.Context,
	cmd RequestCancellationCommand,
) (RequestCancellationResult, error) {
	if err := cmd.Validate(); err != nil {
		return RequestCancellationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RequestCancellationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return RequestCancellationResult{}, err
	}

	expected := aggregate.Status()
	lossWarning, err := aggregate.RequestCancellation(cmd.Reason())
	if err != nil {
		return RequestCancellationResult{}, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, expected); err != nil {
		return RequestCancellationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RequestCancellationResult{}, err
	}

	h.notifier.Publish(ports.ScopeOrders)
	return RequestCancellationResult{LossWarning: lossWarning}, nil
}
