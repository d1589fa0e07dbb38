package ports

import (
	"context"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/note"
)

// NoteRepository defines the persistence contract for customer notes.
// Notes are append-only: there is no update or delete.
type NoteRepository interface {
	// Add persists a new note.
	Add(ctx context.Context, aggregate *note.Note) error

	// GetByOrder retrieves all notes attached to an order, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*note.Note, error)

	// GetByCustomer retrieves all notes across a customer's orders, oldest
	// first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*note.Note, error)
}
