package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"go.uber.org/zap"
)

// statusEvents publishes status changes after commit. Failures are logged only:
// the change is already durable and must not be reported as failed.
type statusEvents struct {
	publisher ports.OrderEventPublisher
	logger    *zap.Logger
}

func newStatusEvents(publisher ports.OrderEventPublisher, logger *zap.Logger) statusEvents {
	return statusEvents{publisher: publisher, logger: logger}
}

func (e statusEvents) publish(ctx context.Context, o *order.Order, from order.Status) {
	history := o.History()
	last := history[len(history)-1]

	event := ports.OrderStatusChanged{
		OrderNumber: o.Number().String(),
		From:        from,
		To:          o.Status(),
		Label:       last.Label,
		OccurredAt:  last.ChangedAt,
	}

	if err := e.publisher.PublishStatusChanged(ctx, event); err != nil {
		e.logger.Warn("failed to publish order status change",
			zap.String("order_number", event.OrderNumber),
			zap.Stringer("from", from),
			zap.Stringer("to", event.To),
			zap.Error(err),
		)
	}
}
