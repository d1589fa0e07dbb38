// Package customer provides the Customer entity referenced by orders.
// Customers are identified externally by phone number; checkout upserts the
// record with the latest contact data.
package customer

import (
	"errors"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the contact data captured at checkout. The phone number is
// the natural key used for upsert-by-phone; all other fields are overwritten
// with whatever the customer last submitted.
type Customer struct {
	id     kernel.UUID
	name   string
	phone  string
	street string
	area   string
	city   string

	isConstructed bool
}

// NewCustomer creates a Customer with validated contact data. Name and phone
// are mandatory; address fields are stored as given.
func NewCustomer(id kernel.UUID, name, phone, street, area, city string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("customer phone")
	}

	return &Customer{
		id:            id,
		name:          name,
		phone:         phone,
		street:        street,
		area:          area,
		city:          city,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone, street, area, city string) (*Customer, error) {
	return NewCustomer(id, name, phone, street, area, city)
}

// Validate ensures the Customer was created via its constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's name.
func (c *Customer) Name() string { return c.name }

// Phone returns the phone number, the customer's natural key.
func (c *Customer) Phone() string { return c.phone }

// Street returns the delivery street.
func (c *Customer) Street() string { return c.street }

// Area returns the delivery area.
func (c *Customer) Area() string { return c.area }

// City returns the delivery city.
func (c *Customer) City() string { return c.city }

// UpdateContact overwrites the mutable contact data with the values the
// customer last submitted at checkout.
func (c *Customer) UpdateContact(name, street, area, city string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	c.street = street
	c.area = area
	c.city = city
	return nil
}
