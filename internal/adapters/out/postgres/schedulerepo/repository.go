package schedulerepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/schedule"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScheduleRepository implements ports.ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// FindScheduleForDay returns the entry of day, or an ObjectNotFound error when
// the day has no row.
func (r *GormScheduleRepository) FindScheduleForDay(
	ctx context.Context,
	day schedule.DayOfWeek,
) (schedule.OpeningSchedule, error) {
	if err := day.Validate(); err != nil {
		return schedule.OpeningSchedule{}, err
	}

	var dto OpeningScheduleDTO
	err := r.db.WithContext(ctx).First(&dto, "day_of_week = ?", int(day)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return schedule.OpeningSchedule{}, errs.NewObjectNotFoundError("opening schedule", day.String())
		}
		return schedule.OpeningSchedule{}, err
	}

	return toDomain(dto)
}

// GetAll returns the stored entries ordered from Monday to Sunday.
func (r *GormScheduleRepository) GetAll(ctx context.Context) ([]schedule.OpeningSchedule, error) {
	var dtos []OpeningScheduleDTO
	if err := r.db.WithContext(ctx).Order("day_of_week").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]schedule.OpeningSchedule, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// Save inserts or replaces the entry of the schedule's day.
func (r *GormScheduleRepository) Save(ctx context.Context, s schedule.OpeningSchedule) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{"opening_time", "closing_time", "is_open"}),
		}).
		Create(&dto).Error
}

// SeedIfEmpty stores entries when the table holds no row yet and reports
// whether it did.
func (r *GormScheduleRepository) SeedIfEmpty(ctx context.Context, entries []schedule.OpeningSchedule) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OpeningScheduleDTO{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewGormScheduleRepository(tx)
		for _, entry := range entries {
			if err := repo.Save(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
