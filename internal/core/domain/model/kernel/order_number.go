package kernel

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

const (
	// OrderNumberSequenceMax is the largest five digit suffix.
	OrderNumberSequenceMax = 99999

	orderNumberPrefix     = "ORD"
	orderNumberDateLayout = "20060102"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{5}$`)

// ErrOrderNumberIsNotConstructed is returned when validating a zero OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or ParseOrderNumber")

// OrderNumber is the human readable order reference ORD-YYYYMMDD-NNNNN.
// The date is the creation day and the suffix a random draw, so two orders
// created the same day may collide; the persistence layer enforces uniqueness.
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber builds the number for an order created at createdAt with the given suffix.
func NewOrderNumber(createdAt time.Time, sequence int) (OrderNumber, error) {
	if createdAt.IsZero() {
		return OrderNumber{}, errs.NewValueIsRequiredError("createdAt")
	}
	if sequence < 0 || sequence > OrderNumberSequenceMax {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 0, OrderNumberSequenceMax)
	}

	return OrderNumber{
		value: fmt.Sprintf("%s-%s-%05d", orderNumberPrefix, createdAt.Format(orderNumberDateLayout), sequence),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseOrderNumber validates the textual form of an order number.
func ParseOrderNumber(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match %s-YYYYMMDD-NNNNN", s, orderNumberPrefix),
		)
	}
	if _, err := time.Parse(orderNumberDateLayout, s[4:12]); err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}

	return OrderNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// RandomSequence draws a suffix in [0, OrderNumberSequenceMax].
func RandomSequence() int {
	return rand.Intn(OrderNumberSequenceMax + 1) //nolint:gosec // tracking code, not a secret
}

// String returns the textual order number.
func (n OrderNumber) String() string {
	return n.value
}

// IsZero reports whether the number was never assigned.
func (n OrderNumber) IsZero() bool {
	return n.value == ""
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate rejects zero values.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
