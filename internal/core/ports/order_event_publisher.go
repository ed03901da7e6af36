package ports

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
)

// OrderStatusChanged describes one status change of an order, including the
// initial move from order.Unknown to order.Pending at creation.
type OrderStatusChanged struct {
	OrderNumber string
	From        order.Status
	To          order.Status
	Label       string
	OccurredAt  time.Time
}

// IsCreation reports whether the event records the creation of the order.
func (e OrderStatusChanged) IsCreation() bool {
	return e.From == order.Unknown
}

// OrderEventPublisher delivers order events to other services. Publication is
// best effort: it happens after commit and its failure never undoes a change.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
