package noterepo

import (
	"context"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/note"

	"gorm.io/gorm"
)

// GormNoteRepository implements NoteRepository using GORM.
type GormNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNoteRepository creates a new GORM note repository.
func NewGormNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormNoteRepository {
	return &GormNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new note to the database.
func (r *GormNoteRepository) Add(ctx context.Context, aggregate *note.Note) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrder retrieves all notes attached to an order, oldest first.
func (r *GormNoteRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*note.Note, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, "order_id = ?", orderID.Bytes())
}

// GetByCustomer retrieves all notes across a customer's orders, oldest first.
func (r *GormNoteRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*note.Note, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, "customer_id = ?", customerID.Bytes())
}

func (r *GormNoteRepository) find(ctx context.Context, cond string, arg any) ([]*note.Note, error) {
	var dtos []NoteDTO
	err := r.db.WithContext(ctx).Where(cond, arg).Order("created_at ASC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notes := make([]*note.Note, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}
