package ports

import (
	"context"

	"catering/internal/core/domain/model/schedule"
)

// ScheduleLookup reads the opening hours of one day of week.
// Implementations return an error wrapping errs.ErrObjectNotFound for a day
// without entry; callers treat such a day as closed.
type ScheduleLookup interface {
	FindScheduleForDay(ctx context.Context, day schedule.DayOfWeek) (schedule.OpeningSchedule, error)
}

// ScheduleRepository stores the weekly opening schedule, one entry per day.
type ScheduleRepository interface {
	ScheduleLookup

	// GetAll returns the stored entries ordered from Monday to Sunday.
	GetAll(ctx context.Context) ([]schedule.OpeningSchedule, error)

	// Save inserts or replaces the entry of the schedule's day.
	Save(ctx context.Context, s schedule.OpeningSchedule) error

	// SeedIfEmpty stores entries when no day is stored yet and reports whether it did.
	SeedIfEmpty(ctx context.Context, entries []schedule.OpeningSchedule) (bool, error)
}
