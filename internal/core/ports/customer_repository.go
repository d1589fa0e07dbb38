package ports

import (
	"context"

	"mezzo/internal/core/domain/model/customer"
	"mezzo/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are looked up by phone number at checkout and upserted with the
// latest contact data.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByPhone retrieves a customer by phone number, the natural key used
	// at checkout. Returns errs.ObjectNotFoundError when no customer has
	// that phone.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
