package postgres

import (
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/schedulerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&schedulerepo.OpeningScheduleDTO{},
	)
}
