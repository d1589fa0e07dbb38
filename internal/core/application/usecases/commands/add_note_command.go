package commands

import (
	"errors"
	"strings"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/pkg/errs"
	"mezzo/internal/pkg/guard"
)

var ErrAddNoteCommandIsNotConstructed = errors.New(
	"AddNoteCommand must be created via NewAddNoteCommand constructor",
)

// AddNoteCommand represents attaching a free-text note to an order, written
// by either the customer or the operator.
type AddNoteCommand struct { //nolint:recvcheck //using for validation
	noteID  kernel.UUID
	orderID kernel.UUID
	text    string
	author  order.Actor

	guard guard.ConstructorGuard
}

// NewAddNoteCommand creates a note command. The text must be non-blank and
// the author a concrete party.
func NewAddNoteCommand(
	noteID kernel.UUID,
	orderID kernel.UUID,
	text string,
	author order.Actor,
) (AddNoteCommand, error) {
	cmd := AddNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setOrderID(orderID),
		cmd.setText(text),
		cmd.setAuthor(author),
	); err != nil {
		return AddNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddNoteCommandIsNotConstructed)
}

// NoteID returns the identifier assigned to the new note.
func (c AddNoteCommand) NoteID() kernel.UUID { return c.noteID }

// OrderID returns the annotated order.
func (c AddNoteCommand) OrderID() kernel.UUID { return c.orderID }

// Text returns the note body.
func (c AddNoteCommand) Text() string { return c.text }

// Author returns which party wrote the note.
func (c AddNoteCommand) Author() order.Actor { return c.author }

func (c *AddNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}
	c.noteID = noteID
	return nil
}

func (c *AddNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddNoteCommand) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("note text")
	}
	c.text = text
	return nil
}

func (c *AddNoteCommand) setAuthor(author order.Actor) error {
	if author != order.ActorCustomer && author != order.ActorOperator {
		return errs.NewValueIsInvalidError("note author")
	}
	c.author = author
	return nil
}
