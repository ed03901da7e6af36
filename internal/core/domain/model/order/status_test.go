package order_test

import (
	"fmt"
	"testing"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Len(t, order.AllStatuses(), 9)

	seen := map[order.Status]bool{}
	for _, s := range order.AllStatuses() {
		assert.False(t, seen[s], "duplicate status %s", s)
		assert.NotEqual(t, order.Unknown, s)
		seen[s] = true
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(10), order.Status(100)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestStatus_StringAndParse(t *testing.T) {
	testCases := []struct {
		status order.Status
		code   string
	}{
		{order.Pending, "pending"},
		{order.Validated, "validated"},
		{order.Preparing, "preparing"},
		{order.Ready, "ready"},
		{order.Delivering, "delivering"},
		{order.Delivered, "delivered"},
		{order.WaitingMaterialReturn, "waiting_material_return"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.status.String())

			parsed, err := order.ParseStatus(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	t.Run("unknown codes", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())

		for _, code := range []string{"", "unknown", "PENDING", "shipped"} {
			_, err := order.ParseStatus(code)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, code)
		}
	})
}

func TestStatus_NextStatuses(t *testing.T) {
	expected := map[order.Status][]order.Status{
		order.Pending:               {order.Validated, order.Cancelled},
		order.Validated:             {order.Preparing, order.Cancelled},
		order.Preparing:             {order.Ready, order.Cancelled},
		order.Ready:                 {order.Delivering},
		order.Delivering:            {order.Delivered},
		order.Delivered:             {order.WaitingMaterialReturn, order.Completed},
		order.WaitingMaterialReturn: {order.Completed},
		order.Completed:             {},
		order.Cancelled:             {},
	}

	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			assert.Equal(t, expected[status], status.NextStatuses())
		})
	}

	t.Run("returned slice is a copy", func(t *testing.T) {
		next := order.Pending.NextStatuses()
		next[0] = order.Completed

		assert.Equal(t, order.Validated, order.Pending.NextStatuses()[0])
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			legal := from.CanTransitionTo(to)

			next, err := from.TransitionTo(to)
			if legal {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
				continue
			}

			require.ErrorIs(t, err, order.ErrIllegalTransition, "%s -> %s", from, to)
			var illegal *order.IllegalTransitionError
			require.ErrorAs(t, err, &illegal)
			assert.Equal(t, from, illegal.From)
			assert.Equal(t, to, illegal.To)
		}
	}

	t.Run("invalid target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("completed cannot be validated again", func(t *testing.T) {
		_, err := order.Completed.TransitionTo(order.Validated)
		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, "illegal status transition: completed -> validated", err.Error())
	})
}

func TestStatus_IsCancellable(t *testing.T) {
	cancellable := map[order.Status]bool{
		order.Pending:   true,
		order.Validated: true,
		order.Preparing: true,
	}

	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			assert.Equal(t, cancellable[status], status.IsCancellable())
		})
	}
}

func TestStatus_IsEditable(t *testing.T) {
	for _, status := range order.AllStatuses() {
		assert.Equal(t, status == order.Pending, status.IsEditable(), status.String())
	}
}

func TestStatus_CanReceiveReview(t *testing.T) {
	for _, status := range order.AllStatuses() {
		assert.Equal(t, status == order.Completed, status.CanReceiveReview(false), status.String())
		assert.False(t, status.CanReceiveReview(true), status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range order.AllStatuses() {
		assert.Equal(t, len(status.NextStatuses()) == 0, status.IsTerminal(), status.String())
	}
}
