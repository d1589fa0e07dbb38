package commands

import (
	"errors"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/pkg/errs"
	"mezzo/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// OrderLine is one requested menu item at checkout. Only the item reference
// and quantity come from the client; name and price are resolved from the
// catalog by the handler.
type OrderLine struct {
	ItemID   kernel.UUID
	Quantity int
}

func (l OrderLine) validate() error {
	if err := l.ItemID.Validate(); err != nil {
		return err
	}
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidError("line quantity")
	}
	return nil
}

// CreateOrderCommand represents a checkout request: the customer's contact
// data, the chosen payment method, and the requested menu items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), "Ali", "+96170123456", "Main St 5", "Hamra", "Beirut",
//	    order.PaymentCash, []OrderLine{{ItemID: burgerID, Quantity: 2}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	street        string
	area          string
	city          string
	paymentMethod order.PaymentMethod
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Validates the order ID,
// the customer's name and phone, the payment method, and every order line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	street string,
	area string,
	city string,
	paymentMethod order.PaymentMethod,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		street: street,
		area:   area,
		city:   city,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerName, customerPhone),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// Street returns the delivery street.
func (c CreateOrderCommand) Street() string { return c.street }

// Area returns the delivery area.
func (c CreateOrderCommand) Area() string { return c.area }

// City returns the delivery city.
func (c CreateOrderCommand) City() string { return c.city }

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine { return c.lines }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.customerName = name
	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return err
		}
	}
	c.lines = lines
	return nil
}
