package schedule

import (
	"fmt"
	"strings"
	"time"

	"catering/internal/pkg/errs"
)

// DayOfWeek identifies a schedule entry. Monday is 1 and Sunday is 7.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// AllDays lists the days from Monday to Sunday.
func AllDays() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// DayOfWeekOf returns the day t falls on, in t's location.
func DayOfWeekOf(t time.Time) DayOfWeek {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return DayOfWeek(t.Weekday())
}

// ParseDayOfWeek accepts names such as "monday" or "MONDAY".
func ParseDayOfWeek(name string) (DayOfWeek, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, d := range AllDays() {
		if dayNames[d] == upper {
			return d, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("dayOfWeek", fmt.Errorf("%q is not a day of week", name))
}

// Validate checks that d is between Monday and Sunday.
func (d DayOfWeek) Validate() error {
	if d < Monday || d > Sunday {
		return errs.NewValueIsOutOfRangeError("dayOfWeek", int(d), int(Monday), int(Sunday))
	}
	return nil
}

func (d DayOfWeek) String() string {
	if d.Validate() != nil {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}
