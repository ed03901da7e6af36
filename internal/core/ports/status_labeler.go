package ports

import "catering/internal/core/domain/model/order"

// StatusPresentation is the display metadata of a status.
type StatusPresentation struct {
	Label      string
	BadgeClass string
	Icon       string
}

// StatusLabeler localizes statuses. Label is what the state machine stores in
// the status history.
type StatusLabeler interface {
	Label(status order.Status) string
	Presentation(status order.Status) StatusPresentation
}
