package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/schedule"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// MinimumLeadTime is the shortest accepted delay between now and a delivery.
const MinimumLeadTime = 48 * time.Hour

var (
	// ErrDeliveryTooSoon is wrapped when the delivery time violates the lead time.
	ErrDeliveryTooSoon = errors.New("delivery must be scheduled at least 48 hours in advance")

	// ErrRestaurantClosed is wrapped when the delivery time is outside opening hours.
	ErrRestaurantClosed = errors.New("the restaurant is closed at the requested delivery time")
)

// RejectionReason tells which rule rejected a delivery time.
type RejectionReason int

const (
	ReasonNone RejectionReason = iota
	ReasonTooSoon
	ReasonClosed
)

// Code returns the machine readable reason used by the API.
func (r RejectionReason) Code() string {
	switch r {
	case ReasonTooSoon:
		return "too_soon"
	case ReasonClosed:
		return "closed"
	case ReasonNone:
		return "none"
	default:
		return "none"
	}
}

func (r RejectionReason) String() string {
	return r.Code()
}

// DeliveryWindowError is returned when a delivery time is rejected.
type DeliveryWindowError struct {
	Reason    RejectionReason
	Candidate time.Time
	Detail    string
}

func (e *DeliveryWindowError) Error() string {
	if e.Detail == "" {
		return e.Unwrap().Error()
	}
	return fmt.Sprintf("%s: %s", e.Unwrap(), e.Detail)
}

func (e *DeliveryWindowError) Unwrap() error {
	if e.Reason == ReasonTooSoon {
		return ErrDeliveryTooSoon
	}
	return ErrRestaurantClosed
}

// ReasonOf extracts the rejection reason from err, or ReasonNone.
func ReasonOf(err error) RejectionReason {
	var windowErr *DeliveryWindowError
	if errors.As(err, &windowErr) {
		return windowErr.Reason
	}
	return ReasonNone
}

// DeliveryWindowValidator checks requested delivery times. It never modifies the schedule.
type DeliveryWindowValidator struct {
	schedules ports.ScheduleLookup
	clock     ports.Clock
	location  *time.Location
}

// DeliveryWindowOption customizes a DeliveryWindowValidator.
type DeliveryWindowOption func(*DeliveryWindowValidator)

// WithRestaurantLocation evaluates day of week and time of day in loc instead of
// the candidate's own location.
func WithRestaurantLocation(loc *time.Location) DeliveryWindowOption {
	return func(v *DeliveryWindowValidator) {
		v.location = loc
	}
}

// NewDeliveryWindowValidator returns a validator reading opening hours from schedules.
func NewDeliveryWindowValidator(
	schedules ports.ScheduleLookup,
	clock ports.Clock,
	opts ...DeliveryWindowOption,
) DeliveryWindowValidator {
	v := DeliveryWindowValidator{
		schedules: schedules,
		clock:     clock,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Validate checks candidate against the injected clock.
func (v DeliveryWindowValidator) Validate(ctx context.Context, candidate time.Time) error {
	return v.ValidateAt(ctx, candidate, v.clock.Now())
}

// ValidateAt checks candidate as if the current time were now.
//
// The lead time rule is checked first: candidate must not be earlier than
// now + MinimumLeadTime. Then the schedule of the candidate's day must exist,
// be open, have both times set and contain the candidate's time of day,
// bounds included.
//
// A rejection is returned as *DeliveryWindowError; any other error comes from
// the schedule lookup.
func (v DeliveryWindowValidator) ValidateAt(ctx context.Context, candidate, now time.Time) error {
	if candidate.Before(now.Add(MinimumLeadTime)) {
		return &DeliveryWindowError{
			Reason:    ReasonTooSoon,
			Candidate: candidate,
			Detail:    fmt.Sprintf("earliest accepted time is %s", now.Add(MinimumLeadTime).Format(time.RFC3339)),
		}
	}

	local := candidate
	if v.location != nil {
		local = candidate.In(v.location)
	}

	day := schedule.DayOfWeekOf(local)
	daySchedule, err := v.schedules.FindScheduleForDay(ctx, day)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return v.closed(candidate, fmt.Sprintf("no opening hours configured for %s", day))
	}
	if err != nil {
		return err
	}

	switch {
	case !daySchedule.IsOpen():
		return v.closed(candidate, fmt.Sprintf("closed on %s", day))
	case !daySchedule.HasHours():
		return v.closed(candidate, fmt.Sprintf("no opening hours set for %s", day))
	case !daySchedule.Accepts(schedule.TimeOfDayOf(local)):
		return v.closed(candidate, fmt.Sprintf("%s hours are %s-%s",
			day, daySchedule.OpeningTime(), daySchedule.ClosingTime()))
	default:
		return nil
	}
}

// IsValidDeliveryDateTime reports whether candidate passes both rules at now.
// The error is only set when the schedule lookup itself fails.
func (v DeliveryWindowValidator) IsValidDeliveryDateTime(ctx context.Context, candidate, now time.Time) (bool, error) {
	err := v.ValidateAt(ctx, candidate, now)
	if err == nil {
		return true, nil
	}
	if ReasonOf(err) != ReasonNone {
		return false, nil
	}
	return false, err
}

func (v DeliveryWindowValidator) closed(candidate time.Time, detail string) error {
	return &DeliveryWindowError{Reason: ReasonClosed, Candidate: candidate, Detail: detail}
}
