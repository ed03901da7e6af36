package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
// A UnitOfWork is never shared between two commands.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork wraps the transaction in which an order changes status.
// Callers Begin, defer Rollback and Commit on success. Rollback after Commit
// changes nothing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction opened by Begin, or to the
	// plain connection before it.
	OrderRepository() OrderRepository
}
