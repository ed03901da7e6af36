package schedule

import (
	"fmt"
	"time"

	"catering/internal/pkg/errs"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall clock time. Schedules are set to the second, instants
// keep their sub-second part so that 18:00:00.5 falls after 18:00:00.
type TimeOfDay struct {
	nanos time.Duration
}

// NewTimeOfDay validates hour, minute and second.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("second", second, 0, 59)
	}
	return TimeOfDay{nanos: time.Duration(hour*3600+minute*60+second) * time.Second}, nil
}

// MustTimeOfDay is NewTimeOfDay for constant inputs. It panics on invalid values.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay reads "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("timeOfDay", fmt.Errorf("%q is not HH:MM or HH:MM:SS", s))
}

// TimeOfDayOf returns the wall clock time of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return TimeOfDay{nanos: time.Duration(seconds)*time.Second + time.Duration(t.Nanosecond())}
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.nanos < other.nanos
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.nanos > other.nanos
}

// String formats as HH:MM:SS, truncating sub-second precision.
func (t TimeOfDay) String() string {
	s := int(t.nanos/time.Second) % secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}
