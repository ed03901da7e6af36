package services_test

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"catering/internal/core/domain/model/schedule"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/clock"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday.
var now = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

type scheduleTable map[schedule.DayOfWeek]schedule.OpeningSchedule

func (s scheduleTable) FindScheduleForDay(_ context.Context, day schedule.DayOfWeek) (schedule.OpeningSchedule, error) {
	found, ok := s[day]
	if !ok {
		return schedule.OpeningSchedule{}, errs.NewObjectNotFoundError("day", day.String())
	}
	return found, nil
}

type failingLookup struct{ err error }

func (f failingLookup) FindScheduleForDay(context.Context, schedule.DayOfWeek) (schedule.OpeningSchedule, error) {
	return schedule.OpeningSchedule{}, f.err
}

func tod(h, m, s int) *schedule.TimeOfDay {
	t := schedule.MustTimeOfDay(h, m, s)
	return &t
}

func newWeek(t *testing.T) scheduleTable {
	t.Helper()

	open := func(day schedule.DayOfWeek) schedule.OpeningSchedule {
		s, err := schedule.NewOpeningSchedule(day, tod(9, 0, 0), tod(18, 0, 0), true)
		require.NoError(t, err)
		return s
	}

	closedWednesday, err := schedule.NewOpeningSchedule(schedule.Wednesday, tod(9, 0, 0), tod(18, 0, 0), false)
	require.NoError(t, err)
	fridayWithoutHours, err := schedule.NewOpeningSchedule(schedule.Friday, nil, nil, true)
	require.NoError(t, err)

	// Thursday is left out on purpose.
	return scheduleTable{
		schedule.Monday:    open(schedule.Monday),
		schedule.Tuesday:   open(schedule.Tuesday),
		schedule.Wednesday: closedWednesday,
		schedule.Friday:    fridayWithoutHours,
		schedule.Saturday:  open(schedule.Saturday),
		schedule.Sunday:    open(schedule.Sunday),
	}
}

func TestDeliveryWindowValidator_LeadTime(t *testing.T) {
	v := services.NewDeliveryWindowValidator(newWeek(t), clock.NewFixed(now))
	ctx := context.Background()

	t.Run("exactly 48 hours ahead is accepted", func(t *testing.T) {
		require.NoError(t, v.ValidateAt(ctx, now.Add(48*time.Hour), now))
	})

	t.Run("one second short of 48 hours is too soon", func(t *testing.T) {
		err := v.ValidateAt(ctx, now.Add(48*time.Hour-time.Second), now)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrDeliveryTooSoon)
		assert.Equal(t, services.ReasonTooSoon, services.ReasonOf(err))
	})

	t.Run("past dates are too soon", func(t *testing.T) {
		err := v.ValidateAt(ctx, now.Add(-time.Hour), now)
		assert.ErrorIs(t, err, services.ErrDeliveryTooSoon)
	})

	t.Run("lead time is checked before opening hours", func(t *testing.T) {
		// Sunday 23:00, outside hours and too soon.
		err := v.ValidateAt(ctx, now.Add(13*time.Hour), now)
		assert.Equal(t, services.ReasonTooSoon, services.ReasonOf(err))
	})

	t.Run("Validate uses the injected clock", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, now.Add(50*time.Hour)))
		assert.ErrorIs(t, v.Validate(ctx, now.Add(47*time.Hour)), services.ErrDeliveryTooSoon)
	})
}

func TestDeliveryWindowValidator_OpeningHours(t *testing.T) {
	v := services.NewDeliveryWindowValidator(newWeek(t), clock.NewFixed(now))
	ctx := context.Background()
	// The week of Monday 2026-10-26 is well past the lead time.
	day := func(d, h, m, s, ns int) time.Time {
		return time.Date(2026, time.October, d, h, m, s, ns, time.UTC)
	}

	tests := []struct {
		name      string
		candidate time.Time
		want      services.RejectionReason
	}{
		{"opening time is included", day(26, 9, 0, 0, 0), services.ReasonNone},
		{"closing time is included", day(26, 18, 0, 0, 0), services.ReasonNone},
		{"midday", day(27, 12, 30, 0, 0), services.ReasonNone},
		{"one second before opening", day(26, 8, 59, 59, 0), services.ReasonClosed},
		{"one second after closing", day(26, 18, 0, 1, 0), services.ReasonClosed},
		{"half a second after closing", day(26, 18, 0, 0, 500_000_000), services.ReasonClosed},
		{"day marked closed", day(28, 12, 0, 0, 0), services.ReasonClosed},
		{"day without schedule", day(29, 12, 0, 0, 0), services.ReasonClosed},
		{"open day without hours", day(30, 12, 0, 0, 0), services.ReasonClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.candidate.Before(now.Add(services.MinimumLeadTime)))

			err := v.ValidateAt(ctx, tt.candidate, now)
			assert.Equal(t, tt.want, services.ReasonOf(err))
			if tt.want == services.ReasonClosed {
				assert.ErrorIs(t, err, services.ErrRestaurantClosed)
				assert.NotErrorIs(t, err, services.ErrDeliveryTooSoon)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeliveryWindowValidator_IsValidDeliveryDateTime(t *testing.T) {
	ctx := context.Background()
	v := services.NewDeliveryWindowValidator(newWeek(t), clock.NewFixed(now))

	ok, err := v.IsValidDeliveryDateTime(ctx, time.Date(2026, time.October, 20, 10, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.IsValidDeliveryDateTime(ctx, time.Date(2026, time.October, 21, 10, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)
	assert.False(t, ok)

	lookupErr := errors.New("connection refused")
	broken := services.NewDeliveryWindowValidator(failingLookup{err: lookupErr}, clock.NewFixed(now))
	ok, err = broken.IsValidDeliveryDateTime(ctx, now.Add(72*time.Hour), now)
	assert.False(t, ok)
	assert.ErrorIs(t, err, lookupErr)
	assert.Equal(t, services.ReasonNone, services.ReasonOf(err))
}

func TestDeliveryWindowValidator_RestaurantLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	v := services.NewDeliveryWindowValidator(
		newWeek(t),
		clock.NewFixed(now),
		services.WithRestaurantLocation(paris),
	)

	// Monday 2026-10-26, 08:30 UTC is 09:30 in Paris winter time.
	candidate := time.Date(2026, time.October, 26, 8, 30, 0, 0, time.UTC)
	require.NoError(t, v.ValidateAt(context.Background(), candidate, now))

	// Without the location the same instant is before opening.
	plain := services.NewDeliveryWindowValidator(newWeek(t), clock.NewFixed(now))
	assert.ErrorIs(t, plain.ValidateAt(context.Background(), candidate, now), services.ErrRestaurantClosed)
}

func TestRejectionReason_Code(t *testing.T) {
	assert.Equal(t, "too_soon", services.ReasonTooSoon.Code())
	assert.Equal(t, "closed", services.ReasonClosed.Code())
	assert.Equal(t, "none", services.ReasonNone.Code())
}
