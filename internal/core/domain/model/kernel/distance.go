package kernel

import "catering/internal/pkg/errs"

// Kilometers is a delivery distance measured from the restaurant.
type Kilometers int

// MaxKilometers is the longest delivery distance accepted.
const MaxKilometers Kilometers = 1000

// NewKilometers validates a delivery distance.
func NewKilometers(km int) (Kilometers, error) {
	if km < 0 || km > int(MaxKilometers) {
		return 0, errs.NewValueIsOutOfRangeError("distanceKm", km, 0, int(MaxKilometers))
	}
	return Kilometers(km), nil
}

// Int returns the distance as a plain integer.
func (k Kilometers) Int() int {
	return int(k)
}
