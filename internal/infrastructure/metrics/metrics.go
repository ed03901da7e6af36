// Package metrics exposes the Prometheus collectors of the catering service and
// the decorators that feed them from the core ports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catering"

// Metrics groups the service collectors.
type Metrics struct {
	// OrdersCreated counts orders stored as pending.
	OrdersCreated prometheus.Counter

	// OrderTransitions counts status changes by source and target status.
	OrderTransitions *prometheus.CounterVec

	// DeliveryWindowRejections counts rejected delivery times by reason code.
	DeliveryWindowRejections *prometheus.CounterVec

	// MaterialReturnsOverdue is the number of late material returns at the last scan.
	MaterialReturnsOverdue prometheus.Gauge
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total orders created",
		}),
		OrderTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Total order status transitions by source and target status",
		}, []string{"from", "to"}),
		DeliveryWindowRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_window_rejections_total",
			Help:      "Total rejected delivery times by reason",
		}, []string{"reason"}),
		MaterialReturnsOverdue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "material_returns_overdue",
			Help:      "Orders whose lent material is past its return deadline",
		}),
	}
}
