package commands

import (
	"context"
	"errors"
	"fmt"

	"mezzo/internal/core/domain/model/customer"
	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/ports"
	"mezzo/internal/pkg/errs"
)

// CreateOrderCommandHandler handles checkout. It prices the requested lines
// from the catalog, upserts the customer by phone number, and stores the
// order with its items in one transaction. Clients never supply prices.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	catalog    ports.CatalogReader
	notifier   ports.ChangeNotifier
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	catalog ports.CatalogReader,
	notifier ports.ChangeNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Handle processes the checkout command. The customer record is upserted by
// phone, the order and all its items are stored atomically, and subscribers
// are notified only after the transaction commits.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.priceLines(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := h.upsertCustomer(ctx, uow.CustomerRepository(), cmd)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), buyer.ID(), cmd.PaymentMethod(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ports.ScopeOrders)
	return nil
}

// priceLines resolves each requested line against the catalog. Unavailable
// items are rejected, and name and unit price always come from the catalog.
func (h *CreateOrderCommandHandler) priceLines(
	ctx context.Context,
	lines []OrderLine,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}

	catalogItems, err := h.catalog.GetItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]ports.CatalogItem, len(catalogItems))
	for _, item := range catalogItems {
		byID[item.ID] = item
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		catalogItem, ok := byID[line.ItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", line.ItemID.String())
		}
		if !catalogItem.Available {
			return nil, errs.NewValueIsInvalidError(
				fmt.Sprintf("menu item %s is not available", catalogItem.Name))
		}

		item, err := order.NewItem(catalogItem.ID, catalogItem.Name, line.Quantity, catalogItem.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// upsertCustomer finds the customer by phone and refreshes their contact
// data, or registers a new customer when the phone is unknown.
func (h *CreateOrderCommandHandler) upsertCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	cmd CreateOrderCommand,
) (*customer.Customer, error) {
	existing, err := repo.GetByPhone(ctx, cmd.CustomerPhone())
	if err == nil {
		if err = existing.UpdateContact(cmd.CustomerName(), cmd.Street(), cmd.Area(), cmd.City()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := customer.NewCustomer(
		kernel.NewUUID(),
		cmd.CustomerName(), cmd.CustomerPhone(),
		cmd.Street(), cmd.Area(), cmd.City(),
	)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
