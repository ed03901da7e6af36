package order_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachine_Initialize_OrderNumberDate(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 00:30 in Paris on the 19th is still the 18th in UTC.
	justAfterMidnight := time.Date(2026, time.October, 18, 22, 30, 0, 0, time.UTC)
	sequence := order.WithSequenceSource(func() int { return 7 })

	tests := []struct {
		name string
		opts []order.StateMachineOption
		want string
	}{
		{"clock zone", []order.StateMachineOption{sequence}, "ORD-20261018-00007"},
		{"restaurant location", []order.StateMachineOption{sequence, order.WithLocation(paris)}, "ORD-20261019-00007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := order.NewStateMachine(clock.NewFixed(justAfterMidnight), codeLabeler{}, tt.opts...)
			o, err := order.NewOrder(newTestDetails(t))
			require.NoError(t, err)

			require.NoError(t, sm.Initialize(o))

			assert.Equal(t, tt.want, o.Number().String())
			assert.True(t, justAfterMidnight.Equal(o.CreatedAt()))
		})
	}
}
