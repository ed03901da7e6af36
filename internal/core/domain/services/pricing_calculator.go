package services

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

const (
	// DeliveryBaseFee is charged for every delivery, in cents.
	DeliveryBaseFee kernel.Money = 500

	// DeliveryFeePerKm is added per kilometer outside the local zone, in cents.
	DeliveryFeePerKm kernel.Money = 59

	// DiscountExtraPersons is how many persons above the menu minimum unlock the discount.
	DiscountExtraPersons = 5

	// DiscountPercent is the share of the subtotal granted as discount.
	DiscountPercent = 10
)

// MenuSubtotal returns pricePerPerson x persons.
func MenuSubtotal(pricePerPerson kernel.Money, persons int) kernel.Money {
	return pricePerPerson.Times(int64(persons))
}

// DeliveryCost returns the base fee in the local zone, and the base fee plus the
// per kilometer rate elsewhere. A nil distance counts as zero kilometers.
func DeliveryCost(isLocalZone bool, distance *kernel.Kilometers) kernel.Money {
	if isLocalZone {
		return DeliveryBaseFee
	}

	km := 0
	if distance != nil {
		km = distance.Int()
	}
	return DeliveryBaseFee.Add(DeliveryFeePerKm.Times(int64(km)))
}

// Discount returns 10% of subtotal, truncated, when persons exceeds menuMinPersons
// by at least five. Otherwise no discount applies and nil is returned.
func Discount(persons, menuMinPersons int, subtotal kernel.Money) *kernel.Money {
	if persons-menuMinPersons < DiscountExtraPersons {
		return nil
	}
	return kernel.OptionalMoney(subtotal.Percent(DiscountPercent))
}

// TotalPrice returns subtotal + deliveryCost - discount.
func TotalPrice(subtotal, deliveryCost kernel.Money, discount *kernel.Money) kernel.Money {
	return subtotal.Add(deliveryCost).Sub(kernel.MoneyOrZero(discount))
}

// PricingRequest is the input of a price calculation.
type PricingRequest struct {
	PricePerPerson  kernel.Money
	NumberOfPersons int
	MenuMinPersons  int
	IsLocalZone     bool
	Distance        *kernel.Kilometers
}

// PricingCalculator prices orders and decides whether a city is in the local delivery zone.
type PricingCalculator struct {
	localZoneCity string
}

// NewPricingCalculator returns a calculator whose local zone is localZoneCity.
func NewPricingCalculator(localZoneCity string) PricingCalculator {
	return PricingCalculator{localZoneCity: strings.TrimSpace(localZoneCity)}
}

// IsLocalZone reports whether city is the local delivery zone, ignoring case.
func (c PricingCalculator) IsLocalZone(city string) bool {
	return c.localZoneCity != "" && strings.EqualFold(strings.TrimSpace(city), c.localZoneCity)
}

// Calculate returns the price breakdown for req. Missing or negative inputs are
// rejected before any arithmetic.
func (c PricingCalculator) Calculate(req PricingRequest) (kernel.PriceBreakdown, error) {
	if err := req.validate(); err != nil {
		return kernel.PriceBreakdown{}, err
	}

	subtotal := MenuSubtotal(req.PricePerPerson, req.NumberOfPersons)
	delivery := DeliveryCost(req.IsLocalZone, req.Distance)
	discount := Discount(req.NumberOfPersons, req.MenuMinPersons, subtotal)

	return kernel.PriceBreakdown{
		MenuSubtotal: subtotal,
		DeliveryCost: delivery,
		Discount:     discount,
		Total:        TotalPrice(subtotal, delivery, discount),
	}, nil
}

func (r PricingRequest) validate() error {
	var distanceErr error
	if r.Distance != nil && (*r.Distance < 0 || *r.Distance > kernel.MaxKilometers) {
		distanceErr = errs.NewValueIsOutOfRangeError("distanceKm", r.Distance.Int(), 0, int(kernel.MaxKilometers))
	}

	var personsErr error
	if r.NumberOfPersons <= 0 {
		personsErr = errs.NewValueIsOutOfRangeError("numberOfPersons", r.NumberOfPersons, 1, "unbounded")
	}

	var minPersonsErr error
	if r.MenuMinPersons < 0 {
		minPersonsErr = errs.NewValueIsOutOfRangeError("menuMinPersons", r.MenuMinPersons, 0, "unbounded")
	}

	var priceErr error
	if r.PricePerPerson < 0 || r.PricePerPerson > kernel.MaxMoney {
		priceErr = errs.NewValueIsOutOfRangeError("pricePerPerson", int64(r.PricePerPerson), 0, int64(kernel.MaxMoney))
	}

	return errors.Join(priceErr, personsErr, minPersonsErr, distanceErr)
}
