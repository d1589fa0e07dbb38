package commands_test

import (
	"testing"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// storedOrder builds an order aggregate and walks it to the given status, as
// if loaded from the repository.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromString("50")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Burger", 2, price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentCash, []order.Item{item})
	require.NoError(t, err)

	path := []order.Status{order.Preparing, order.OnWay, order.Arrived, order.Completed}
	for _, next := range path {
		if o.Status() == status {
			break
		}
		require.NoError(t, o.Advance(next, order.ActorOperator))
	}
	require.Equal(t, status, o.Status())
	return o
}
