package metrics

import (
	"context"
	"time"

	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
)

// InstrumentedPublisher counts status changes before handing them to the next publisher.
// The creation event counts as a created order, every other event as a transition.
type InstrumentedPublisher struct {
	next    ports.OrderEventPublisher
	metrics *Metrics
}

// NewInstrumentedPublisher wraps next.
func NewInstrumentedPublisher(next ports.OrderEventPublisher, m *Metrics) InstrumentedPublisher {
	return InstrumentedPublisher{next: next, metrics: m}
}

func (p InstrumentedPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	if event.IsCreation() {
		p.metrics.OrdersCreated.Inc()
	} else {
		p.metrics.OrderTransitions.WithLabelValues(event.From.String(), event.To.String()).Inc()
	}
	return p.next.PublishStatusChanged(ctx, event)
}

// windowValidator is the validation method of services.DeliveryWindowValidator.
type windowValidator interface {
	Validate(ctx context.Context, candidate time.Time) error
}

// InstrumentedWindowValidator counts delivery window rejections by reason.
type InstrumentedWindowValidator struct {
	next    windowValidator
	metrics *Metrics
}

// NewInstrumentedWindowValidator wraps next.
func NewInstrumentedWindowValidator(next windowValidator, m *Metrics) InstrumentedWindowValidator {
	return InstrumentedWindowValidator{next: next, metrics: m}
}

func (v InstrumentedWindowValidator) Validate(ctx context.Context, candidate time.Time) error {
	err := v.next.Validate(ctx, candidate)
	if reason := services.ReasonOf(err); reason != services.ReasonNone {
		v.metrics.DeliveryWindowRejections.WithLabelValues(reason.Code()).Inc()
	}
	return err
}
