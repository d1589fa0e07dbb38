// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lifecycle fields are stored in their wire string form so the rows stay
// readable in SQL and the status column can back the compare-and-set write.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber        string    `gorm:"uniqueIndex"`
	CustomerID         uuid.UUID `gorm:"type:uuid;index"`
	PaymentMethod      string
	TotalAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status             string          `gorm:"index"`
	CancellationReason string
	CancelledBy        string
	CancellationStage  string
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Name and unit price are
// frozen copies taken from the catalog at checkout.
type OrderItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ItemID    uuid.UUID `gorm:"type:uuid"`
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ItemID:    item.ItemID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	stage := ""
	if aggregate.CancellationStage() != order.Unknown {
		stage = aggregate.CancellationStage().String()
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderNumber:        aggregate.OrderNumber(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		PaymentMethod:      aggregate.PaymentMethod().String(),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		Status:             aggregate.Status().String(),
		CancellationReason: aggregate.CancellationReason(),
		CancelledBy:        aggregate.CancelledBy().String(),
		CancellationStage:  stage,
		Items:              items,
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-validates
// the cancellation metadata invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	cancelledBy, err := order.ActorFromString(dto.CancelledBy)
	if err != nil {
		return nil, err
	}

	stage := order.Unknown
	if dto.CancellationStage != "" {
		if stage, err = order.StatusFromString(dto.CancellationStage); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(itemID, itemDTO.Name, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, customerID, paymentMethod, total,
		status, dto.CancellationReason, cancelledBy, stage,
		items, dto.CreatedAt, dto.UpdatedAt,
	)
}
