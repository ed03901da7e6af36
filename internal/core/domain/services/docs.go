// Package services provides the stateless domain services of the catering core.
//
// PricingCalculator derives the price breakdown of an order from its menu,
// number of persons and delivery zone. All arithmetic is on integer cents and
// the discount is truncated, never rounded.
//
// DeliveryWindowValidator accepts or rejects a requested delivery time against
// the minimum lead time and the restaurant's opening hours, reporting the
// precise reason of a rejection.
//
// Neither service depends on the order state machine; the create-order command
// composes the three.
package services
