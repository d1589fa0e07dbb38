package commands

import (
	"context"

	"mezzo/internal/core/domain/model/note"
	"mezzo/internal/core/ports"
)

// AddNoteCommandHandler appends a note to an existing order. The order is
// loaded first so the note inherits its customer attribution and a note can
// never point at a missing order.
type AddNoteCommandHandler struct {
	uowFactory NoteUoWFactory
	notifier   ports.ChangeNotifier
}

// NewAddNoteCommandHandler creates a handler for note operations.
func NewAddNoteCommandHandler(
	uowFactory NoteUoWFactory,
	notifier ports.ChangeNotifier,
) AddNoteCommandHandler {
	return AddNoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the note command.
func (h *AddNoteCommandHandler) Handle(ctx context.Context, cmd AddNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	record, err := note.NewNote(cmd.NoteID(), cmd.OrderID(), aggregate.CustomerID(), cmd.Text(), cmd.Author())
	if err != nil {
		return err
	}

	if err = uow.NoteRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ports.ScopeOrders)
	return nil
}
