package schedulerepo

import (
	"context"
	"errors"
	"testing"

	"catering/internal/core/domain/model/schedule"
	"catering/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var scheduleColumns = []string{"day_of_week", "opening_time", "closing_time", "is_open"}

func newMockRepository(t *testing.T) (*GormScheduleRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	return NewGormScheduleRepository(db), mock
}

func TestGormScheduleRepository_FindScheduleForDay(t *testing.T) {
	ctx := context.Background()

	t.Run("open day", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "opening_schedules" WHERE day_of_week = \$1`).
			WillReturnRows(sqlmock.NewRows(scheduleColumns).AddRow(5, "09:00:00", "20:00:00", true))

		entry, err := repo.FindScheduleForDay(ctx, schedule.Friday)
		require.NoError(t, err)

		assert.Equal(t, schedule.Friday, entry.Day())
		assert.True(t, entry.IsOpen())
		require.NotNil(t, entry.OpeningTime())
		assert.Equal(t, schedule.MustTimeOfDay(9, 0, 0), *entry.OpeningTime())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("closed day without hours", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "opening_schedules"`).
			WillReturnRows(sqlmock.NewRows(scheduleColumns).AddRow(7, nil, nil, false))

		entry, err := repo.FindScheduleForDay(ctx, schedule.Sunday)
		require.NoError(t, err)

		assert.False(t, entry.IsOpen())
		assert.Nil(t, entry.OpeningTime())
		assert.Nil(t, entry.ClosingTime())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "opening_schedules"`).
			WillReturnRows(sqlmock.NewRows(scheduleColumns))

		_, err := repo.FindScheduleForDay(ctx, schedule.Monday)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("database error is returned as is", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		boom := errors.New("relation does not exist")
		mock.ExpectQuery(`SELECT \* FROM "opening_schedules"`).WillReturnError(boom)

		_, err := repo.FindScheduleForDay(ctx, schedule.Monday)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invalid day never reaches the database", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		_, err := repo.FindScheduleForDay(ctx, schedule.DayOfWeek(9))
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormScheduleRepository_GetAll_RejectsCorruptRow(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "opening_schedules" ORDER BY day_of_week`).
		WillReturnRows(sqlmock.NewRows(scheduleColumns).
			AddRow(1, "09:00:00", "18:00:00", true).
			AddRow(2, "nine", "18:00:00", true))

	_, err := repo.GetAll(context.Background())
	assert.Error(t, err)
}
