package order

import (
	"time"

	"catering/internal/core/domain/model/kernel"
)

// Clock supplies the current time to the state machine.
type Clock interface {
	Now() time.Time
}

// Labeler maps a status to the display label stored in the history.
type Labeler interface {
	Label(status Status) string
}

// StateMachine applies lifecycle operations to orders, stamping each change with
// the injected clock and labeler.
//
// Example:
//
//	sm := order.NewStateMachine(clock.NewSystem(), labels.NewFrench())
//	if err := sm.Initialize(o); err != nil {
//	    return err
//	}
//	if err := sm.ChangeStatus(o, order.Validated); err != nil {
//	    // err wraps order.ErrIllegalTransition if the edge does not exist
//	}
type StateMachine struct {
	clock    Clock
	labels   Labeler
	sequence func() int
	location *time.Location
}

// StateMachineOption customizes a StateMachine.
type StateMachineOption func(*StateMachine)

// WithSequenceSource replaces the random order number suffix generator.
func WithSequenceSource(sequence func() int) StateMachineOption {
	return func(m *StateMachine) {
		m.sequence = sequence
	}
}

// WithLocation dates order numbers in loc instead of the clock's zone, so that
// an order taken at 00:30 restaurant time carries that day's date.
func WithLocation(loc *time.Location) StateMachineOption {
	return func(m *StateMachine) {
		m.location = loc
	}
}

// NewStateMachine returns a state machine using clock and labels.
func NewStateMachine(clock Clock, labels Labeler, opts ...StateMachineOption) StateMachine {
	m := StateMachine{
		clock:    clock,
		labels:   labels,
		sequence: kernel.RandomSequence,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Initialize gives a new order its creation time, order number and Pending status.
func (m StateMachine) Initialize(o *Order) error {
	now := m.clock.Now()

	dated := now
	if m.location != nil {
		dated = now.In(m.location)
	}

	number, err := kernel.NewOrderNumber(dated, m.sequence())
	if err != nil {
		return err
	}

	return o.Initialize(now, number, m.labels.Label(Pending))
}

// ChangeStatus moves o to status to if the transition table allows it.
func (m StateMachine) ChangeStatus(o *Order, to Status) error {
	return o.ChangeStatus(to, m.labels.Label(to), m.clock.Now())
}

// Cancel cancels o when its status is cancellable, recording reason.
func (m StateMachine) Cancel(o *Order, reason string) error {
	return o.Cancel(reason, m.labels.Label(Cancelled), m.clock.Now())
}

// Now exposes the state machine clock to callers that derive deadlines from it.
func (m StateMachine) Now() time.Time {
	return m.clock.Now()
}
