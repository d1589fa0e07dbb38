package queries

import (
	"errors"

	"mezzo/internal/pkg/errs"
	"mezzo/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves one customer's order history by phone
// number. Backs the customer's own "my orders" view, which is keyed by the
// phone they checked out with.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(phone string) (GetCustomerOrdersQuery, error) {
	if phone == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customer phone")
	}
	return GetCustomerOrdersQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Phone returns the phone number identifying the customer.
func (q GetCustomerOrdersQuery) Phone() string {
	return q.phone
}
