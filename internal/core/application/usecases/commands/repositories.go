// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mezzo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// NoteRepoFactory provides access to the note repository within a transaction.
	NoteRepoFactory interface {
		NoteRepository() ports.NoteRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle commands, which touch a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions spanning the customer upsert and the
	// order insert performed at checkout.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// NoteUoW manages transactions for appending notes to an order.
	NoteUoW interface {
		TxManager
		OrderRepoFactory
		NoteRepoFactory
	}

	// NoteUoWFactory creates new note unit of work instances.
	NoteUoWFactory interface {
		Create() NoteUoW
	}
)
