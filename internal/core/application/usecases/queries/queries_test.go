package queries_test

import (
	"testing"
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	number, err := kernel.ParseOrderNumber("ORD-20261018-00042")
	require.NoError(t, err)

	query, err := queries.NewGetOrderQuery(number)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, number, query.OrderNumber())
}

func TestNewGetOrderQuery_ZeroNumber(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.OrderNumber{})

	require.Error(t, err)
}

func TestNewGetOverdueMaterialReturnsQuery(t *testing.T) {
	now := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

	query, err := queries.NewGetOverdueMaterialReturnsQuery(now)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, now, query.Now())

	_, err = queries.NewGetOverdueMaterialReturnsQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCheckDeliveryWindowQuery_ZeroTime(t *testing.T) {
	_, err := queries.NewCheckDeliveryWindowQuery(time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetOverdueMaterialReturnsQuery{}.Validate(),
		queries.ErrGetOverdueMaterialReturnsQueryIsNotConstructed,
	)
	assert.ErrorIs(t, queries.QuotePriceQuery{}.Validate(), queries.ErrQuotePriceQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.CheckDeliveryWindowQuery{}.Validate(),
		queries.ErrCheckDeliveryWindowQueryIsNotConstructed,
	)
}
