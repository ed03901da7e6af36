package orderrepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the postgres SQLSTATE of a unique constraint failure.
const uniqueViolation = "23505"

// ErrOrderIsNotStored is returned when updating an order that was never added.
var ErrOrderIsNotStored = errors.New("order has no identifier, add it before updating")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its history and assigns the generated identifier.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.Number().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrOrderNumberTaken
		}
		return err
	}

	aggregate.AssignID(dto.ID)
	return nil
}

// Update saves the order row and appends the history entries not stored yet.
// The stored history must be a prefix of the aggregate's history, otherwise the
// aggregate was loaded before another change and ports.ErrOrderModifiedConcurrently
// is returned without writing anything.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == 0 {
		return ErrOrderIsNotStored
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	var stored []string
	err := db.Model(&StatusHistoryDTO{}).
		Where("order_id = ?", dto.ID).
		Order("position").
		Pluck("status", &stored).Error
	if err != nil {
		return err
	}
	if !isPrefix(stored, dto.History) {
		return ports.ErrOrderModifiedConcurrently
	}

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations, "id", "number", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.Number)
	}

	if len(stored) < len(dto.History) {
		if err = db.Create(dto.History[len(stored):]).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrOrderModifiedConcurrently
			}
			return err
		}
	}

	return nil
}

// GetByNumber retrieves an order and its history by order number. The order
// row is locked with FOR UPDATE until the surrounding transaction ends, so a
// concurrent command waits and then reads the committed state.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func isPrefix(stored []string, history []StatusHistoryDTO) bool {
	if len(stored) > len(history) {
		return false
	}
	for i, status := range stored {
		if history[i].Status != status {
			return false
		}
	}
	return true
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
