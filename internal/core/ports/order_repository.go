package ports

import (
	"context"
	"errors"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
)

// ErrConcurrentModification is returned when a status update loses a race:
// the order's stored status no longer matches the status the caller read.
// The caller should re-read the order and retry or surface a conflict.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// ErrOrderCreationFailed is returned when the order row or any of its item
// rows could not be stored. The whole order is rolled back; no partial order
// is ever left behind.
var ErrOrderCreationFailed = errors.New("order creation failed")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with all its line items
	// in one transaction. If any part fails the whole write is rolled back
	// and ErrOrderCreationFailed is returned.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the aggregate's lifecycle fields only if the
	// stored status still equals expected (compare-and-set). Returns
	// ErrConcurrentModification when another writer got there first.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer retrieves a customer's orders, newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
