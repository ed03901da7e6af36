package queries

import (
	"errors"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCheckDeliveryWindowQueryIsNotConstructed = errors.New(
	"CheckDeliveryWindowQuery must be created via NewCheckDeliveryWindowQuery constructor",
)

// CheckDeliveryWindowQuery asks whether a delivery time would be accepted now.
type CheckDeliveryWindowQuery struct {
	candidate time.Time
	guard     guard.ConstructorGuard
}

func NewCheckDeliveryWindowQuery(candidate time.Time) (CheckDeliveryWindowQuery, error) {
	if candidate.IsZero() {
		return CheckDeliveryWindowQuery{}, errs.NewValueIsRequiredError("deliveryAt")
	}
	return CheckDeliveryWindowQuery{candidate: candidate, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckDeliveryWindowQuery) Validate() error {
	return q.guard.Validate(ErrCheckDeliveryWindowQueryIsNotConstructed)
}

// CheckDeliveryWindowQueryResponse tells whether the time is accepted and,
// if not, why. Reason is "too_soon" or "closed" on rejection and empty otherwise.
type CheckDeliveryWindowQueryResponse struct {
	Valid  bool
	Reason string
	Detail string
}
