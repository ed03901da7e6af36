package queries

import (
	"errors"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrGetOverdueMaterialReturnsQueryIsNotConstructed = errors.New(
		"GetOverdueMaterialReturnsQuery must be created via NewGetOverdueMaterialReturnsQuery constructor",
	)
)

// GetOverdueMaterialReturnsQuery lists orders whose lent equipment is late at a given time.
//
// Example:
//
//	query, _ := NewGetOverdueMaterialReturnsQuery(time.Now())
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range overdue {
//	    fmt.Printf("%s is %s late\n", o.Number, o.OverdueBy)
//	}
type GetOverdueMaterialReturnsQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

// NewGetOverdueMaterialReturnsQuery creates a query evaluated at now.
func NewGetOverdueMaterialReturnsQuery(now time.Time) (GetOverdueMaterialReturnsQuery, error) {
	if now.IsZero() {
		return GetOverdueMaterialReturnsQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetOverdueMaterialReturnsQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueMaterialReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueMaterialReturnsQueryIsNotConstructed)
}

// Now returns the instant the deadlines are compared with.
func (q GetOverdueMaterialReturnsQuery) Now() time.Time {
	return q.now
}

// GetOverdueMaterialReturnsQueryResponse is one order with late equipment.
type GetOverdueMaterialReturnsQueryResponse struct {
	Number        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Deadline      time.Time
	OverdueBy     time.Duration
}
