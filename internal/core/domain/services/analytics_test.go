package services_test

import (
	"testing"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuItem struct {
	id       kernel.UUID
	name     string
	price    string
	category string
}

func menu(t *testing.T) (burger, soda, salad menuItem, categories map[kernel.UUID]string) {
	t.Helper()
	burger = menuItem{id: kernel.NewUUID(), name: "Burger", price: "50", category: "mains"}
	soda = menuItem{id: kernel.NewUUID(), name: "Soda", price: "15", category: "drinks"}
	salad = menuItem{id: kernel.NewUUID(), name: "Salad", price: "30", category: "mains"}
	categories = map[kernel.UUID]string{
		burger.id: burger.category,
		soda.id:   soda.category,
		salad.id:  salad.category,
	}
	return burger, soda, salad, categories
}

func buildOrder(t *testing.T, lines []order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentCash, lines)
	require.NoError(t, err)
	return o
}

func line(t *testing.T, item menuItem, quantity int) order.Item {
	t.Helper()
	price, err := kernel.NewMoneyFromString(item.price)
	require.NoError(t, err)
	l, err := order.NewItem(item.id, item.name, quantity, price)
	require.NoError(t, err)
	return l
}

func complete(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	for _, target := range []order.Status{order.Preparing, order.OnWay, order.Arrived, order.Completed} {
		require.NoError(t, o.Advance(target, order.ActorOperator))
	}
	return o
}

func TestAnalyticsService_Compute(t *testing.T) {
	burger, soda, salad, categories := menu(t)
	svc := services.NewAnalyticsService()

	t.Run("empty input yields a zero report", func(t *testing.T) {
		report, err := svc.Compute(nil, categories)
		require.NoError(t, err)

		assert.Zero(t, report.TotalOrders)
		assert.Equal(t, "0.00", report.Revenue.String())
		assert.Equal(t, "0.00", report.Losses.String())
		assert.Empty(t, report.TopItems)
		assert.Empty(t, report.TopCategories)
	})

	t.Run("revenue counts completed orders only", func(t *testing.T) {
		completed := complete(t, buildOrder(t, []order.Item{line(t, burger, 2), line(t, soda, 1)}))
		pending := buildOrder(t, []order.Item{line(t, salad, 1)})

		report, err := svc.Compute([]*order.Order{completed, pending}, categories)
		require.NoError(t, err)

		assert.Equal(t, 2, report.TotalOrders)
		assert.Equal(t, 1, report.CompletedOrders)
		assert.Equal(t, "115.00", report.Revenue.String())
		assert.Equal(t, "115.00", report.AverageOrder.String())
		assert.Equal(t, 1, report.CountsByStatus[order.Completed])
		assert.Equal(t, 1, report.CountsByStatus[order.UnderReview])
	})

	t.Run("losses count cancellations after dispatch", func(t *testing.T) {
		// Approved customer cancellation while on the way: total is lost.
		lost := buildOrder(t, []order.Item{line(t, burger, 1)})
		require.NoError(t, lost.Advance(order.Preparing, order.ActorOperator))
		require.NoError(t, lost.Advance(order.OnWay, order.ActorOperator))
		_, err := lost.RequestCancellation("wrong address")
		require.NoError(t, err)
		require.NoError(t, lost.ResolveCancellation(true))

		// Operator cancel during review: nothing was dispatched, no loss.
		harmless := buildOrder(t, []order.Item{line(t, soda, 3)})
		require.NoError(t, harmless.CancelByOperator("out of stock"))

		report, err := svc.Compute([]*order.Order{lost, harmless}, categories)
		require.NoError(t, err)

		assert.Equal(t, 2, report.CancelledOrders)
		assert.Equal(t, "50.00", report.Losses.String())
		assert.Equal(t, "0.00", report.Revenue.String())
	})

	t.Run("popularity is quantity-weighted over completed orders", func(t *testing.T) {
		first := complete(t, buildOrder(t, []order.Item{line(t, burger, 2), line(t, soda, 5)}))
		second := complete(t, buildOrder(t, []order.Item{line(t, burger, 1), line(t, salad, 1)}))
		ignored := buildOrder(t, []order.Item{line(t, soda, 100)})

		report, err := svc.Compute([]*order.Order{first, second, ignored}, categories)
		require.NoError(t, err)

		require.Len(t, report.TopItems, 3)
		assert.Equal(t, "Soda", report.TopItems[0].Name)
		assert.Equal(t, 5, report.TopItems[0].Quantity)
		assert.Equal(t, "Burger", report.TopItems[1].Name)
		assert.Equal(t, 3, report.TopItems[1].Quantity)
		assert.Equal(t, "150.00", report.TopItems[1].Revenue.String())
		assert.Equal(t, "Salad", report.TopItems[2].Name)

		require.Len(t, report.TopCategories, 2)
		assert.Equal(t, "drinks", report.TopCategories[0].Category)
		assert.Equal(t, 5, report.TopCategories[0].Quantity)
		assert.Equal(t, "mains", report.TopCategories[1].Category)
		assert.Equal(t, 4, report.TopCategories[1].Quantity)
		assert.Equal(t, "180.00", report.TopCategories[1].Revenue.String())
	})

	t.Run("rankings keep the top five items", func(t *testing.T) {
		lines := make([]order.Item, 0, 7)
		cats := make(map[kernel.UUID]string)
		for i := 0; i < 7; i++ {
			item := menuItem{
				id:    kernel.NewUUID(),
				name:  string(rune('A' + i)),
				price: "10",
			}
			lines = append(lines, line(t, item, i+1))
			cats[item.id] = item.name
		}
		completed := complete(t, buildOrder(t, lines))

		report, err := svc.Compute([]*order.Order{completed}, cats)
		require.NoError(t, err)

		require.Len(t, report.TopItems, 5)
		assert.Equal(t, 7, report.TopItems[0].Quantity)
		assert.Equal(t, 3, report.TopItems[4].Quantity)
		require.Len(t, report.TopCategories, 5)
	})

	t.Run("unmapped items fall back to uncategorized", func(t *testing.T) {
		completed := complete(t, buildOrder(t, []order.Item{line(t, burger, 1)}))

		report, err := svc.Compute([]*order.Order{completed}, nil)
		require.NoError(t, err)

		require.Len(t, report.TopCategories, 1)
		assert.Equal(t, "uncategorized", report.TopCategories[0].Category)
	})
}
