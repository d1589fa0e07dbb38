// Package noterepo persists the append-only customer notes attached to
// orders.
package noterepo

import (
	"time"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/note"
	"mezzo/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// NoteDTO represents the database structure for persisting notes.
type NoteDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Text       string
	CreatedBy  string
	CreatedAt  time.Time
}

// TableName specifies the database table name for note entities.
func (NoteDTO) TableName() string {
	return "customer_notes"
}

func fromDomain(aggregate *note.Note) NoteDTO {
	return NoteDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Text:       aggregate.Text(),
		CreatedBy:  aggregate.Author().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto NoteDTO) (*note.Note, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	author, err := order.ActorFromString(dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	return note.RestoreNote(id, orderID, customerID, dto.Text, author, dto.CreatedAt)
}
