package order

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel wrapped by IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
type Status int

const (
	// Unknown is the zero value and marks an order that was never initialized.
	Unknown Status = iota

	// Pending is the initial status: the order waits for staff validation.
	Pending

	// Validated means staff accepted the order.
	Validated

	// Preparing means the kitchen started working on the order.
	Preparing

	// Ready means the order is prepared and waits for departure.
	Ready

	// Delivering means the order is on its way.
	Delivering

	// Delivered means the customer received the order.
	Delivered

	// WaitingMaterialReturn means lent equipment still has to come back.
	WaitingMaterialReturn

	// Completed is terminal: the order is closed.
	Completed

	// Cancelled is terminal: the order was cancelled before preparation ended.
	Cancelled
)

var statusCodes = map[Status]string{
	Unknown:               "unknown",
	Pending:               "pending",
	Validated:             "validated",
	Preparing:             "preparing",
	Ready:                 "ready",
	Delivering:            "delivering",
	Delivered:             "delivered",
	WaitingMaterialReturn: "waiting_material_return",
	Completed:             "completed",
	Cancelled:             "cancelled",
}

// transitions is the single source of truth for legal status changes.
//
//nolint:exhaustive // Unknown has no outgoing edges
var transitions = map[Status][]Status{
	Pending:               {Validated, Cancelled},
	Validated:             {Preparing, Cancelled},
	Preparing:             {Ready, Cancelled},
	Ready:                 {Delivering},
	Delivering:            {Delivered},
	Delivered:             {WaitingMaterialReturn, Completed},
	WaitingMaterialReturn: {Completed},
	Completed:             {},
	Cancelled:             {},
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Pending,
		Validated,
		Preparing,
		Ready,
		Delivering,
		Delivered,
		WaitingMaterialReturn,
		Completed,
		Cancelled,
	}
}

// ParseStatus converts a status code such as "waiting_material_return" to a Status.
func ParseStatus(code string) (Status, error) {
	for status, c := range statusCodes {
		if status != Unknown && c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks that s is one of the nine lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stable status code used in storage and APIs.
func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return statusCodes[Unknown]
}

// NextStatuses returns the statuses reachable from s in one step.
// The result is empty for terminal and invalid statuses.
func (s Status) NextStatuses() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether s -> to is an edge of the transition table.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns to when s -> to is legal, or an IllegalTransitionError.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, &IllegalTransitionError{From: s, To: to}
	}
	return to, nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsCancellable reports whether an order in s may still be cancelled.
func (s Status) IsCancellable() bool {
	return s == Pending || s == Validated || s == Preparing
}

// IsEditable reports whether the order content may still be modified.
func (s Status) IsEditable() bool {
	return s == Pending
}

// CanReceiveReview reports whether a customer review may be attached.
func (s Status) CanReceiveReview(hasExistingReview bool) bool {
	return s == Completed && !hasExistingReview
}

// IllegalTransitionError reports a requested edge that is not in the transition table.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
