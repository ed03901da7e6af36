package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery prices an order without creating it.
type QuotePriceQuery struct {
	pricePerPerson  kernel.Money
	numberOfPersons int
	menuMinPersons  int
	city            string
	distance        *kernel.Kilometers

	guard guard.ConstructorGuard
}

// NewQuotePriceQuery creates a quote request. Range checks are left to the
// pricing calculator so that quotes and orders reject the same inputs.
func NewQuotePriceQuery(
	pricePerPerson kernel.Money,
	numberOfPersons int,
	menuMinPersons int,
	city string,
	distance *kernel.Kilometers,
) QuotePriceQuery {
	return QuotePriceQuery{
		pricePerPerson:  pricePerPerson,
		numberOfPersons: numberOfPersons,
		menuMinPersons:  menuMinPersons,
		city:            city,
		distance:        distance,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

// QuotePriceQueryResponse is the computed breakdown and the zone it was priced for.
type QuotePriceQueryResponse struct {
	Breakdown   kernel.PriceBreakdown
	IsLocalZone bool
}
