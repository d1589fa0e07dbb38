// Package note provides the append-only CustomerNote entity. Notes are
// attached to an order by either party, never edited, and never deleted.
package note

import (
	"errors"
	"strings"
	"time"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/pkg/errs"
)

// ErrNoteIsNotConstructed is returned when a Note was not created through
// NewNote or RestoreNote.
var ErrNoteIsNotConstructed = errors.New("Note must be created via NewNote constructor")

// Note is a free-text annotation on an order, attributed to the customer or
// the operator. Append-only.
type Note struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	text       string
	author     order.Actor
	createdAt  time.Time

	isConstructed bool
}

// NewNote creates a Note. The author must be a concrete party and the text
// non-blank.
func NewNote(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	text string,
	author order.Actor,
) (*Note, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.NewValueIsRequiredError("note text")
	}
	if author != order.ActorCustomer && author != order.ActorOperator {
		return nil, errs.NewValueIsInvalidError("note author")
	}

	return &Note{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		text:          text,
		author:        author,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreNote reconstructs a Note from persistence.
func RestoreNote(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	text string,
	author order.Actor,
	createdAt time.Time,
) (*Note, error) {
	n, err := NewNote(id, orderID, customerID, text, author)
	if err != nil {
		return nil, err
	}
	n.createdAt = createdAt
	return n, nil
}

// Validate ensures the Note was created via its constructor.
func (n *Note) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNoteIsNotConstructed
	}
	return nil
}

// ID returns the note's unique identifier.
func (n *Note) ID() kernel.UUID { return n.id }

// OrderID returns the annotated order.
func (n *Note) OrderID() kernel.UUID { return n.orderID }

// CustomerID returns the customer the order belongs to.
func (n *Note) CustomerID() kernel.UUID { return n.customerID }

// Text returns the note body.
func (n *Note) Text() string { return n.text }

// Author returns which party wrote the note.
func (n *Note) Author() order.Actor { return n.author }

// CreatedAt returns when the note was written.
func (n *Note) CreatedAt() time.Time { return n.createdAt }
