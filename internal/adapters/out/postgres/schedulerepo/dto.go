// Package schedulerepo persists the weekly opening schedule, one row per day.
package schedulerepo

import (
	"catering/internal/core/domain/model/schedule"
)

// OpeningScheduleDTO is one day of the weekly schedule. Times are stored as
// "HH:MM:SS" text and are null when the day has no hours.
type OpeningScheduleDTO struct {
	DayOfWeek   int     `gorm:"primaryKey;autoIncrement:false"`
	OpeningTime *string `gorm:"size:8"`
	ClosingTime *string `gorm:"size:8"`
	IsOpen      bool    `gorm:"not null;default:false"`
}

// TableName specifies the database table name for schedule entries.
func (OpeningScheduleDTO) TableName() string {
	return "opening_schedules"
}

func fromDomain(s schedule.OpeningSchedule) OpeningScheduleDTO {
	return OpeningScheduleDTO{
		DayOfWeek:   int(s.Day()),
		OpeningTime: formatTime(s.OpeningTime()),
		ClosingTime: formatTime(s.ClosingTime()),
		IsOpen:      s.IsOpen(),
	}
}

func toDomain(dto OpeningScheduleDTO) (schedule.OpeningSchedule, error) {
	opening, err := parseTime(dto.OpeningTime)
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}
	closing, err := parseTime(dto.ClosingTime)
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}
	return schedule.NewOpeningSchedule(schedule.DayOfWeek(dto.DayOfWeek), opening, closing, dto.IsOpen)
}

func formatTime(t *schedule.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func parseTime(s *string) (*schedule.TimeOfDay, error) {
	if s == nil || *s == "" {
		return nil, nil //nolint:nilnil // absent time of day
	}
	t, err := schedule.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
