package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads one customer's order history. An
// unknown phone number is not an error; the customer simply has no orders
// yet, so the result is empty.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := readOrderRows(ctx, h.db, `
		SELECT
			o.id, o.order_number, o.customer_id, c.name, c.phone,
			o.status, o.payment_method, o.total_amount,
			o.cancellation_reason, o.cancelled_by, o.cancellation_stage,
			o.created_at, o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE c.phone = ?
		ORDER BY o.created_at DESC
	`, query.Phone())
	if err != nil {
		return nil, err
	}

	if err = attachItemRows(ctx, h.db, orders, index); err != nil {
		return nil, err
	}
	if err = attachNoteRows(ctx, h.db, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}
