package schedulerepo

import (
	"errors"
	"fmt"
	"os"

	"catering/internal/core/domain/model/schedule"

	"gopkg.in/yaml.v3"
)

// ScheduleFile is the YAML layout of the default weekly schedule:
//
//	days:
//	  - day: monday
//	    open: true
//	    opening: "09:00"
//	    closing: "18:00"
type ScheduleFile struct {
	Days []ScheduleFileDay `yaml:"days"`
}

// ScheduleFileDay is one day of a ScheduleFile.
type ScheduleFileDay struct {
	Day     string `yaml:"day"`
	Open    bool   `yaml:"open"`
	Opening string `yaml:"opening,omitempty"`
	Closing string `yaml:"closing,omitempty"`
}

// LoadScheduleFile reads and parses the schedule file at path.
func LoadScheduleFile(path string) ([]schedule.OpeningSchedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	return ParseSchedule(data)
}

// ParseSchedule decodes a YAML schedule. A day may appear at most once.
func ParseSchedule(data []byte) ([]schedule.OpeningSchedule, error) {
	var file ScheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse schedule file: %w", err)
	}

	seen := make(map[schedule.DayOfWeek]bool, len(file.Days))
	result := make([]schedule.OpeningSchedule, 0, len(file.Days))
	var errList []error

	for _, d := range file.Days {
		entry, err := d.toDomain()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if seen[entry.Day()] {
			errList = append(errList, fmt.Errorf("day %s is listed twice", entry.Day()))
			continue
		}
		seen[entry.Day()] = true
		result = append(result, entry)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return result, nil
}

func (d ScheduleFileDay) toDomain() (schedule.OpeningSchedule, error) {
	day, err := schedule.ParseDayOfWeek(d.Day)
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}

	opening, err := parseTime(optional(d.Opening))
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}
	closing, err := parseTime(optional(d.Closing))
	if err != nil {
		return schedule.OpeningSchedule{}, err
	}

	return schedule.NewOpeningSchedule(day, opening, closing, d.Open)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
