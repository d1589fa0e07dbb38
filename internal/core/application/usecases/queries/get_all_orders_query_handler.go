package queries

import (
	"context"
	"time"

	"mezzo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the complete order list for the operator
// dashboard. Orders come back newest first with their line items attached.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order list.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Three reads: the orders joined with their
// customer, then line items and notes stitched onto them in memory.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
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
		ORDER BY o.created_at DESC
	`)
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

// readOrderRows scans order rows produced by the shared column list into
// responses, remembering each order's position for item stitching.
func readOrderRows(
	ctx context.Context,
	db *gorm.DB,
	sql string,
	args ...any,
) ([]OrderResponse, map[kernel.UUID]int, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			id, customerID uuid.UUID
			total          decimal.Decimal
			resp           OrderResponse
			createdAt      time.Time
			updatedAt      time.Time
		)
		if err = rows.Scan(
			&id, &resp.OrderNumber, &customerID, &resp.CustomerName, &resp.CustomerPhone,
			&resp.Status, &resp.PaymentMethod, &total,
			&resp.CancellationReason, &resp.CancelledBy, &resp.CancellationStage,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, nil, err
		}
		if resp.TotalAmount, err = kernel.NewMoney(total); err != nil {
			return nil, nil, err
		}
		resp.CreatedAt = createdAt
		resp.UpdatedAt = updatedAt
		resp.Items = make([]OrderItemResponse, 0)
		resp.Notes = make([]NoteResponse, 0)

		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return orders, index, nil
}

func attachItemRows(
	ctx context.Context,
	db *gorm.DB,
	orders []OrderResponse,
	index map[kernel.UUID]int,
) error {
	if len(orders) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, item_id, name, quantity, unit_price
		FROM order_items
		ORDER BY order_id, name
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, itemID uuid.UUID
			item            OrderItemResponse
			unitPrice       decimal.Decimal
		)
		if err = rows.Scan(&orderID, &itemID, &item.Name, &item.Quantity, &unitPrice); err != nil {
			return err
		}

		parent, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return err
		}
		pos, ok := index[parent]
		if !ok {
			continue
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return err
		}
		item.Subtotal = item.UnitPrice.MulQuantity(item.Quantity)
		orders[pos].Items = append(orders[pos].Items, item)
	}
	return rows.Err()
}

func attachNoteRows(
	ctx context.Context,
	db *gorm.DB,
	orders []OrderResponse,
	index map[kernel.UUID]int,
) error {
	if len(orders) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, id, text, created_by, created_at
		FROM customer_notes
		ORDER BY order_id, created_at
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, noteID uuid.UUID
			note            NoteResponse
		)
		if err = rows.Scan(&orderID, &noteID, &note.Text, &note.Author, &note.CreatedAt); err != nil {
			return err
		}

		parent, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return err
		}
		pos, ok := index[parent]
		if !ok {
			continue
		}

		if note.ID, err = kernel.UUIDFromBytes(noteID[:]); err != nil {
			return err
		}
		orders[pos].Notes = append(orders[pos].Notes, note)
	}
	return rows.Err()
}
