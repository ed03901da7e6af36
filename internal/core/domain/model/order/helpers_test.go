package order_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

type codeLabeler struct{}

func (codeLabeler) Label(s order.Status) string {
	return "label:" + s.String()
}

func newTestCustomer(t *testing.T) order.Customer {
	t.Helper()

	c, err := order.NewCustomer("Camille", "Martin", "camille.martin@example.com", "+33 5 56 00 00 00", "12 rue Sainte-Catherine, 33000 Bordeaux")
	require.NoError(t, err)
	return c
}

// newTestDetails prices 10 persons at 50.00 delivered 20 km away.
func newTestDetails(t *testing.T) order.Details {
	t.Helper()

	distance := kernel.Kilometers(20)
	return order.Details{
		Customer:         newTestCustomer(t),
		MenuName:         "Menu de Noël",
		PricePerPerson:   5000,
		NumberOfPersons:  10,
		DeliveryAt:       testNow.Add(72 * time.Hour),
		DeliveryDistance: &distance,
		Pricing: kernel.PriceBreakdown{
			MenuSubtotal: 50000,
			DeliveryCost: 1680,
			Discount:     kernel.OptionalMoney(5000),
			Total:        46680,
		},
	}
}

func newTestStateMachine() (order.StateMachine, *clock.Fixed) {
	c := clock.NewFixed(testNow)
	return order.NewStateMachine(c, codeLabeler{}, order.WithSequenceSource(func() int { return 42 })), c
}

func newInitializedOrder(t *testing.T) (*order.Order, order.StateMachine, *clock.Fixed) {
	t.Helper()

	o, err := order.NewOrder(newTestDetails(t))
	require.NoError(t, err)

	sm, c := newTestStateMachine()
	require.NoError(t, sm.Initialize(o))
	return o, sm, c
}

func driveTo(t *testing.T, sm order.StateMachine, o *order.Order, path ...order.Status) {
	t.Helper()

	for _, s := range path {
		require.NoError(t, sm.ChangeStatus(o, s))
	}
}
