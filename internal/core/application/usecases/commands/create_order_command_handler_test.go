package commands_test

import (
	"context"
	"errors"
	"testing"

	"mezzo/internal/core/application/usecases/commands"
	"mezzo/internal/core/domain/model/customer"
	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/ports"
	"mezzo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutCommand(t *testing.T, itemID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Ali", "+96170123456", "Main St 5", "Hamra", "Beirut",
		order.PaymentCash,
		[]commands.OrderLine{{ItemID: itemID, Quantity: 2}},
	)
	require.NoError(t, err)
	return cmd
}

func catalogBurger(t *testing.T, id kernel.UUID, available bool) ports.CatalogItem {
	t.Helper()
	price, err := kernel.NewMoneyFromString("50")
	require.NoError(t, err)
	return ports.CatalogItem{ID: id, Name: "Burger", Category: "mains", Price: price, Available: available}
}

func TestCreateOrderCommandHandler_Handle_NewCustomer(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := checkoutCommand(t, itemID)

	catalog := new(MockCatalogReader)
	catalog.On("GetItems", ctx, mock.Anything).
		Return([]ports.CatalogItem{catalogBurger(t, itemID, true)}, nil).Once()

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByPhone", ctx, "+96170123456").
			Return(nil, errs.NewObjectNotFoundError("customer", "+96170123456")).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", ports.ScopeOrders).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalog, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	stored := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.Equal(t, order.UnderReview, stored.Status())
	require.Equal(t, "100.00", stored.TotalAmount().String())

	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ExistingCustomer(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := checkoutCommand(t, itemID)

	existing, err := customer.NewCustomer(
		kernel.NewUUID(), "Old Name", "+96170123456", "Old St", "Old Area", "Beirut")
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetItems", ctx, mock.Anything).
		Return([]ports.CatalogItem{catalogBurger(t, itemID, true)}, nil).Once()

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByPhone", ctx, "+96170123456").Return(existing, nil).Once(),
		customerRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", ports.ScopeOrders).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalog, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	// Contact data refreshed, phone untouched.
	require.Equal(t, "Ali", existing.Name())
	require.Equal(t, "Main St 5", existing.Street())
	require.Equal(t, "+96170123456", existing.Phone())

	stored := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.True(t, stored.CustomerID().IsEqual(existing.ID()))

	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableItem(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := checkoutCommand(t, itemID)

	catalog := new(MockCatalogReader)
	catalog.On("GetItems", ctx, mock.Anything).
		Return([]ports.CatalogItem{catalogBurger(t, itemID, false)}, nil).Once()

	factory := new(MockCheckoutUoWFactory)
	notifier := new(MockChangeNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	factory.AssertNotCalled(t, "Create")
	notifier.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, kernel.NewUUID())

	catalog := new(MockCatalogReader)
	catalog.On("GetItems", ctx, mock.Anything).Return([]ports.CatalogItem{}, nil).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockCheckoutUoWFactory), catalog, new(MockChangeNotifier))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	cmd := commands.CreateOrderCommand{} // not constructed properly
	h := commands.NewCreateOrderCommandHandler(
		new(MockCheckoutUoWFactory), new(MockCatalogReader), new(MockChangeNotifier))
	require.Error(t, h.Handle(context.Background(), cmd))
}

func TestCreateOrderCommandHandler_Handle_CommitErrorSkipsNotify(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := checkoutCommand(t, itemID)

	catalog := new(MockCatalogReader)
	catalog.On("GetItems", ctx, mock.Anything).
		Return([]ports.CatalogItem{catalogBurger(t, itemID, true)}, nil).Once()

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByPhone", ctx, "+96170123456").
			Return(nil, errs.NewObjectNotFoundError("customer", "+96170123456")).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockChangeNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, catalog, notifier)
	require.Error(t, h.Handle(ctx, cmd))
	notifier.AssertNotCalled(t, "Publish", mock.Anything)
}
