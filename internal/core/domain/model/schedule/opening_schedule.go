package schedule

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

// ErrOpeningScheduleIsNotConstructed is returned when validating a zero OpeningSchedule.
var ErrOpeningScheduleIsNotConstructed = errors.New("OpeningSchedule must be created via NewOpeningSchedule constructor")

// OpeningSchedule holds the opening hours of one day of week.
// When both times are set, opening is strictly before closing.
type OpeningSchedule struct { //nolint:recvcheck //using for validation
	day     DayOfWeek
	opening *TimeOfDay
	closing *TimeOfDay
	isOpen  bool
	guard   guard.ConstructorGuard
}

// NewOpeningSchedule validates and builds a day schedule.
func NewOpeningSchedule(day DayOfWeek, opening, closing *TimeOfDay, isOpen bool) (OpeningSchedule, error) {
	if err := day.Validate(); err != nil {
		return OpeningSchedule{}, err
	}
	if opening != nil && closing != nil && !opening.Before(*closing) {
		return OpeningSchedule{}, errs.NewValueIsInvalidErrorWithCause(
			"schedule",
			fmt.Errorf("%s opening time %s must precede closing time %s", day, opening, closing),
		)
	}

	s := OpeningSchedule{
		day:    day,
		isOpen: isOpen,
		guard:  guard.NewConstructorGuard(),
	}
	if opening != nil {
		o := *opening
		s.opening = &o
	}
	if closing != nil {
		c := *closing
		s.closing = &c
	}
	return s, nil
}

// Validate ensures the schedule was built by its constructor.
func (s OpeningSchedule) Validate() error {
	return s.guard.Validate(ErrOpeningScheduleIsNotConstructed)
}

func (s OpeningSchedule) Day() DayOfWeek          { return s.day }
func (s OpeningSchedule) OpeningTime() *TimeOfDay { return s.opening }
func (s OpeningSchedule) ClosingTime() *TimeOfDay { return s.closing }
func (s OpeningSchedule) IsOpen() bool            { return s.isOpen }

// HasHours reports whether both opening and closing times are set.
func (s OpeningSchedule) HasHours() bool {
	return s.opening != nil && s.closing != nil
}

// Accepts reports whether t lies within [opening, closing] on an open day.
func (s OpeningSchedule) Accepts(t TimeOfDay) bool {
	if !s.isOpen || !s.HasHours() {
		return false
	}
	return !t.Before(*s.opening) && !t.After(*s.closing)
}
