package kernel

import (
	"math"

	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor currency units (cents).
type Money int64

// MaxMoney bounds any single amount accepted from the outside world.
const MaxMoney Money = math.MaxInt32

// NewMoney validates that cents is a non-negative amount.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 || cents > int64(MaxMoney) {
		return 0, errs.NewValueIsOutOfRangeError("money", cents, 0, int64(MaxMoney))
	}
	return Money(cents), nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Times returns m multiplied by n.
func (m Money) Times(n int64) Money {
	return Money(int64(m) * n)
}

// Percent returns percent% of m, truncated toward zero.
func (m Money) Percent(percent int64) Money {
	return Money(int64(m) * percent / 100)
}

// Decimal returns the amount in major units, e.g. 1680 -> 16.80.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// OptionalMoney returns a pointer to m. It is used where absence is meaningful.
func OptionalMoney(m Money) *Money {
	return &m
}

// MoneyOrZero dereferences m, treating nil as zero.
func MoneyOrZero(m *Money) Money {
	if m == nil {
		return 0
	}
	return *m
}
