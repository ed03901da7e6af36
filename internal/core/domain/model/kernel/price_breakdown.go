package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// PriceBreakdown is the priced view of an order.
// Discount is nil when no discount applies, which is not the same as a zero discount.
type PriceBreakdown struct {
	MenuSubtotal Money
	DeliveryCost Money
	Discount     *Money
	Total        Money
}

// Validate checks Total == MenuSubtotal + DeliveryCost - Discount and that no amount is negative.
func (b PriceBreakdown) Validate() error {
	if b.MenuSubtotal < 0 || b.DeliveryCost < 0 || MoneyOrZero(b.Discount) < 0 || b.Total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price breakdown", fmt.Errorf("negative amount in %+v", b))
	}

	expected := b.MenuSubtotal.Add(b.DeliveryCost).Sub(MoneyOrZero(b.Discount))
	if b.Total != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"price breakdown",
			fmt.Errorf("total %d does not equal %d", b.Total, expected),
		)
	}
	return nil
}
