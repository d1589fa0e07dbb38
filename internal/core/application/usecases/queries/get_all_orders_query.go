// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never mutate state and never go through aggregates.
package queries

import (
	"errors"
	"time"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its line items, newest first.
// Backs the operator's order management screen.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for the full order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one line of an order as shown to operators.
type OrderItemResponse struct {
	ItemID    kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// NoteResponse is one note attached to an order, oldest first.
type NoteResponse struct {
	ID        kernel.UUID
	Text      string
	Author    string
	CreatedAt time.Time
}

// OrderResponse is the full order view: lifecycle state, cancellation
// metadata, money totals, line items, and notes.
type OrderResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	CustomerID         kernel.UUID
	CustomerName       string
	CustomerPhone      string
	Status             string
	PaymentMethod      string
	TotalAmount        kernel.Money
	CancellationReason string
	CancelledBy        string
	CancellationStage  string
	Items              []OrderItemResponse
	Notes              []NoteResponse
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
