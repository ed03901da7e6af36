package queries

import (
	"context"

	"catering/internal/core/domain/services"
)

// QuotePriceQueryHandler prices orders with the same calculator the create-order command uses.
type QuotePriceQueryHandler struct {
	pricing services.PricingCalculator
}

func NewQuotePriceQueryHandler(pricing services.PricingCalculator) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{pricing: pricing}
}

// Handle computes the breakdown of the quoted order.
func (h QuotePriceQueryHandler) Handle(_ context.Context, query QuotePriceQuery) (QuotePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuotePriceQueryResponse{}, err
	}

	isLocalZone := h.pricing.IsLocalZone(query.city)
	breakdown, err := h.pricing.Calculate(services.PricingRequest{
		PricePerPerson:  query.pricePerPerson,
		NumberOfPersons: query.numberOfPersons,
		MenuMinPersons:  query.menuMinPersons,
		IsLocalZone:     isLocalZone,
		Distance:        query.distance,
	})
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	return QuotePriceQueryResponse{Breakdown: breakdown, IsLocalZone: isLocalZone}, nil
}
