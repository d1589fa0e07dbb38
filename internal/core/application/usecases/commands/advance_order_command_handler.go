package commands

import (
	"context"

	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order one step along its lifecycle on
// behalf of the operator. The write is compare-and-set on the status the
// handler read, so two operators racing on the same order cannot both win.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewAdvanceOrderCommandHandler creates a handler for status advancement.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the advancement command. Returns the domain's transition
// errors unchanged, and ports.ErrConcurrentModification when another writer
// changed the order after it was read.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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
	if err = aggregate.Advance(cmd.Target(), order.ActorOperator); err != nil {
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
