package queries_test

import (
	"context"
	"errors"
	"testing"

	"mezzo/internal/core/application/usecases/queries"
	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/domain/services"
	"mezzo/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderReader) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderReader) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetItems(ctx context.Context, ids []kernel.UUID) ([]ports.CatalogItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CatalogItem), args.Error(1)
}

func (m *MockCatalog) ItemCategories(ctx context.Context) (map[kernel.UUID]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]string), args.Error(1)
}

func completedOrder(t *testing.T, itemID kernel.UUID, name, price string, quantity int) *order.Order {
	t.Helper()

	unitPrice, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewItem(itemID, name, quantity, unitPrice)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentCash, []order.Item{item})
	require.NoError(t, err)

	for _, next := range []order.Status{order.Preparing, order.OnWay, order.Arrived, order.Completed} {
		require.NoError(t, o.Advance(next, order.ActorOperator))
	}
	return o
}

func TestGetAnalyticsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	burgerID := kernel.NewUUID()
	completed := completedOrder(t, burgerID, "Burger", "50", 2)

	orderRepo := new(MockOrderReader)
	orderRepo.On("GetAll", mock.Anything).Return([]*order.Order{completed}, nil).Once()

	catalog := new(MockCatalog)
	catalog.On("ItemCategories", mock.Anything).
		Return(map[kernel.UUID]string{burgerID: "mains"}, nil).Once()

	h := queries.NewGetAnalyticsQueryHandler(orderRepo, catalog, services.NewAnalyticsService())
	resp, err := h.Handle(ctx, queries.NewGetAnalyticsQuery())
	require.NoError(t, err)

	require.Equal(t, 1, resp.Report.TotalOrders)
	require.Equal(t, "100.00", resp.Report.Revenue.String())
	require.Len(t, resp.Report.TopItems, 1)
	require.Equal(t, "Burger", resp.Report.TopItems[0].Name)
	require.Len(t, resp.Report.TopCategories, 1)
	require.Equal(t, "mains", resp.Report.TopCategories[0].Category)

	orderRepo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestGetAnalyticsQueryHandler_Handle_LoadError(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderReader)
	orderRepo.On("GetAll", mock.Anything).Return(nil, errors.New("db down")).Once()

	catalog := new(MockCatalog)
	catalog.On("ItemCategories", mock.Anything).
		Return(map[kernel.UUID]string{}, nil).Maybe()

	h := queries.NewGetAnalyticsQueryHandler(orderRepo, catalog, services.NewAnalyticsService())
	_, err := h.Handle(ctx, queries.NewGetAnalyticsQuery())
	require.Error(t, err)
}

func TestGetAnalyticsQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetAnalyticsQueryHandler(
		new(MockOrderReader), new(MockCatalog), services.NewAnalyticsService())
	var notConstructed queries.GetAnalyticsQuery
	_, err := h.Handle(context.Background(), notConstructed)
	require.Error(t, err)
}
