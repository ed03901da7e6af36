package commands_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Sunday.
var testNow = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type stubWindow struct{ err error }

func (s stubWindow) Validate(context.Context, time.Time) error {
	return s.err
}

type codeLabeler struct{}

func (codeLabeler) Label(s order.Status) string {
	return "label:" + s.String()
}

func newStateMachine(c *clock.Fixed, sequences ...int) order.StateMachine {
	next := 0
	return order.NewStateMachine(c, codeLabeler{}, order.WithSequenceSource(func() int {
		if len(sequences) == 0 {
			return 42
		}
		seq := sequences[next%len(sequences)]
		next++
		return seq
	}))
}

func newCustomer(t *testing.T) order.Customer {
	t.Helper()

	c, err := order.NewCustomer("Camille", "Martin", "camille.martin@example.com", "", "12 rue Sainte-Catherine, 33000 Bordeaux")
	require.NoError(t, err)
	return c
}

// newStoredOrder returns an initialized order driven through path.
func newStoredOrder(t *testing.T, sm order.StateMachine, hasMaterialLoan bool, path ...order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(order.Details{
		Customer:        newCustomer(t),
		MenuName:        "Menu Découverte",
		PricePerPerson:  3000,
		NumberOfPersons: 10,
		DeliveryAt:      testNow.Add(72 * time.Hour),
		Pricing: kernel.PriceBreakdown{
			MenuSubtotal: 30000,
			DeliveryCost: 500,
			Total:        30500,
		},
		HasMaterialLoan: hasMaterialLoan,
	})
	require.NoError(t, err)
	require.NoError(t, sm.Initialize(o))

	for _, status := range path {
		require.NoError(t, sm.ChangeStatus(o, status))
	}
	return o
}

// expectTransaction wires a factory returning a unit of work bound to repo.
func expectTransaction(ctx context.Context, repo *MockOrderRepository) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}
