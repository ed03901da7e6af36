// Package ports defines the contracts between the catering core and its adapters.
// Repositories, the unit of work, the clock, status presentation and event
// publication are all expressed here so that the core never imports an adapter.
package ports

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

var (
	// ErrOrderNumberTaken is returned by Add when another order already holds the number.
	ErrOrderNumberTaken = errors.New("order number is already taken")

	// ErrOrderModifiedConcurrently is returned by Update when the stored order
	// changed after the aggregate was loaded.
	ErrOrderModifiedConcurrently = errors.New("order was modified by another request")
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new initialized order and assigns its numeric identifier.
	// Returns ErrOrderNumberTaken when the order number collides with a stored one.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, history and lifecycle fields of an existing order.
	// History entries already stored are never rewritten. Returns
	// ErrOrderModifiedConcurrently when the stored history is not a prefix of
	// the aggregate's history.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order with its complete status history. Within a
	// unit of work the order stays locked until commit or rollback.
	// Returns an error wrapping errs.ErrObjectNotFound when no order has that number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)
}
