package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/generated/servers"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testOrderNumber = "ORD-20261018-00042"

type createOrderMock struct{ mock.Mock }

func (m *createOrderMock) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.OrderNumber, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.OrderNumber), args.Error(1)
}

type changeStatusMock struct{ mock.Mock }

func (m *changeStatusMock) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type cancelOrderMock struct{ mock.Mock }

func (m *cancelOrderMock) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type returnMaterialMock struct{ mock.Mock }

func (m *returnMaterialMock) Handle(ctx context.Context, cmd commands.ReturnMaterialCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type getOrderMock struct{ mock.Mock }

func (m *getOrderMock) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type quotePriceMock struct{ mock.Mock }

func (m *quotePriceMock) Handle(ctx context.Context, query queries.QuotePriceQuery) (queries.QuotePriceQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.QuotePriceQueryResponse), args.Error(1)
}

type checkWindowMock struct{ mock.Mock }

func (m *checkWindowMock) Handle(
	ctx context.Context,
	query queries.CheckDeliveryWindowQuery,
) (queries.CheckDeliveryWindowQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CheckDeliveryWindowQueryResponse), args.Error(1)
}

type fixture struct {
	e            *echo.Echo
	createOrder  *createOrderMock
	changeStatus *changeStatusMock
	cancelOrder  *cancelOrderMock
	returnMat    *returnMaterialMock
	getOrder     *getOrderMock
	quotePrice   *quotePriceMock
	checkWindow  *checkWindowMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		createOrder:  &createOrderMock{},
		changeStatus: &changeStatusMock{},
		cancelOrder:  &cancelOrderMock{},
		returnMat:    &returnMaterialMock{},
		getOrder:     &getOrderMock{},
		quotePrice:   &quotePriceMock{},
		checkWindow:  &checkWindowMock{},
	}

	srv := NewServer(Handlers{
		CreateOrder:         f.createOrder,
		ChangeOrderStatus:   f.changeStatus,
		CancelOrder:         f.cancelOrder,
		ReturnMaterial:      f.returnMat,
		GetOrder:            f.getOrder,
		QuotePrice:          f.quotePrice,
		CheckDeliveryWindow: f.checkWindow,
	}, zap.NewNop())

	e, err := NewRouter(srv, prometheus.NewRegistry(), zap.NewNop())
	require.NoError(t, err)
	f.e = e

	t.Cleanup(func() {
		f.createOrder.AssertExpectations(t)
		f.changeStatus.AssertExpectations(t)
		f.cancelOrder.AssertExpectations(t)
		f.returnMat.AssertExpectations(t)
		f.getOrder.AssertExpectations(t)
		f.quotePrice.AssertExpectations(t)
		f.checkWindow.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func mustNumber(t *testing.T) kernel.OrderNumber {
	t.Helper()
	number, err := kernel.ParseOrderNumber(testOrderNumber)
	require.NoError(t, err)
	return number
}

const newOrderBody = `{
	"customer": {"firstname": "Camille", "lastname": "Martin", "email": "camille@example.com", "address": "12 rue Sainte-Catherine"},
	"city": "Bordeaux",
	"menu": {"name": "Menu de Noël", "pricePerPersonCents": 2500, "minPersons": 10},
	"numberOfPersons": 20,
	"deliveryAt": "2026-10-22T12:00:00+02:00",
	"hasMaterialLoan": true
}`

func TestServer_CreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.NumberOfPersons() == 20 &&
				cmd.City() == "Bordeaux" &&
				cmd.Menu().PricePerPerson == 2500 &&
				cmd.HasMaterialLoan() &&
				cmd.Distance() == nil
		})).Return(mustNumber(t), nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", newOrderBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"orderNumber":"`+testOrderNumber+`"}`, rec.Body.String())
	})

	t.Run("missing required field is rejected before the handler", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"city": "Bordeaux"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
	})

	t.Run("fewer persons than the menu minimum", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(newOrderBody, `"numberOfPersons": 20`, `"numberOfPersons": 5`, 1)

		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "number of persons")
	})

	t.Run("rejected delivery window", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(kernel.OrderNumber{}, &services.DeliveryWindowError{Reason: services.ReasonTooSoon}).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", newOrderBody)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeError(t, rec)
		require.NotNil(t, body.Reason)
		assert.Equal(t, "too_soon", *body.Reason)
	})

	t.Run("unexpected failure hides the cause", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(kernel.OrderNumber{}, errors.New("connection reset by peer")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", newOrderBody)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create order", decodeError(t, rec).Message)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		discount := kernel.Money(5000)
		changedAt := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
		pending := queries.StatusView{Code: "pending", Label: "En attente", BadgeClass: "badge-warning", Icon: "hourglass"}

		f.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.OrderNumber().String() == testOrderNumber
		})).Return(queries.GetOrderQueryResponse{
			Number:          testOrderNumber,
			Status:          pending,
			Customer:        queries.CustomerView{Firstname: "Camille", Lastname: "Martin", Email: "camille@example.com"},
			MenuName:        "Menu de Noël",
			PricePerPerson:  2500,
			NumberOfPersons: 20,
			DeliveryAt:      changedAt.Add(96 * time.Hour),
			MenuSubtotal:    50000,
			DeliveryCost:    500,
			Discount:        &discount,
			TotalPrice:      45500,
			CreatedAt:       changedAt,
			UpdatedAt:       changedAt,
			History:         []queries.HistoryView{{Status: pending, Label: "En attente", ChangedAt: changedAt}},
			NextStatuses:    []queries.StatusView{{Code: "validated"}, {Code: "cancelled"}},
			IsCancellable:   true,
			IsEditable:      true,
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+testOrderNumber, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testOrderNumber, body.OrderNumber)
		assert.Equal(t, "pending", body.Status.Code)
		assert.Equal(t, servers.Money{Cents: 45500, Amount: "455.00"}, body.TotalPrice)
		require.NotNil(t, body.Discount)
		assert.Equal(t, "50.00", body.Discount.Amount)
		assert.Nil(t, body.Customer.Phone)
		assert.Len(t, body.History, 1)
		assert.Len(t, body.NextStatuses, 2)
		assert.True(t, body.IsCancellable)
		assert.False(t, body.CanReceiveReview)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", testOrderNumber)).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+testOrderNumber, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed number", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders/ORD-42", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_ChangeOrderStatus(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
			return cmd.Status() == order.Validated && cmd.OrderNumber().String() == testOrderNumber
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/status", `{"status":"validated"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.Anything).
			Return(&order.IllegalTransitionError{From: order.Pending, To: order.Delivered}).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/status", `{"status":"delivered"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("cancelled with reason", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
			return cmd.Status() == order.Cancelled && cmd.Reason() == "kitchen closed"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/status",
			`{"status":"cancelled","reason":"kitchen closed"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("changed by another request", func(t *testing.T) {
		f := newFixture(t)
		f.changeStatus.On("Handle", mock.Anything, mock.Anything).
			Return(ports.ErrOrderModifiedConcurrently).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/status", `{"status":"validated"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, ports.ErrOrderModifiedConcurrently.Error(), decodeError(t, rec).Message)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/status", `{"status":"lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CancelOrder(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		f := newFixture(t)
		f.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
			return cmd.Reason() == ""
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/cancel", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("with reason", func(t *testing.T) {
		f := newFixture(t)
		f.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
			return cmd.Reason() == "event postponed"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/cancel", `{"reason":" event postponed "}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("no longer cancellable", func(t *testing.T) {
		f := newFixture(t)
		f.cancelOrder.On("Handle", mock.Anything, mock.Anything).Return(order.ErrOrderNotCancellable).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/cancel", "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "can no longer be cancelled")
	})
}

func TestServer_ReturnMaterial(t *testing.T) {
	t.Run("returned", func(t *testing.T) {
		f := newFixture(t)
		f.returnMat.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/material-return", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("order without loan", func(t *testing.T) {
		f := newFixture(t)
		f.returnMat.On("Handle", mock.Anything, mock.Anything).Return(order.ErrNoMaterialLoan).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+testOrderNumber+"/material-return", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestServer_QuotePrice(t *testing.T) {
	t.Run("quoted", func(t *testing.T) {
		f := newFixture(t)
		discount := kernel.Money(5000)
		f.quotePrice.On("Handle", mock.Anything, mock.Anything).Return(queries.QuotePriceQueryResponse{
			Breakdown: kernel.PriceBreakdown{
				MenuSubtotal: 50000,
				DeliveryCost: 500,
				Discount:     &discount,
				Total:        45500,
			},
			IsLocalZone: true,
		}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/pricing/quote",
			`{"pricePerPersonCents":2500,"numberOfPersons":20,"menuMinPersons":10,"city":"Bordeaux"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"menuSubtotal": {"cents": 50000, "amount": "500.00"},
			"deliveryCost": {"cents": 500, "amount": "5.00"},
			"discount": {"cents": 5000, "amount": "50.00"},
			"totalPrice": {"cents": 45500, "amount": "455.00"},
			"isLocalZone": true
		}`, rec.Body.String())
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t)
		f.quotePrice.On("Handle", mock.Anything, mock.Anything).
			Return(queries.QuotePriceQueryResponse{}, errs.NewValueIsOutOfRangeError("numberOfPersons", 0, 1, "unbounded")).Once()

		rec := f.do(http.MethodPost, "/api/v1/pricing/quote",
			`{"pricePerPersonCents":2500,"numberOfPersons":0,"menuMinPersons":10,"city":"Bordeaux"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CheckDeliveryWindow(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		f := newFixture(t)
		f.checkWindow.On("Handle", mock.Anything, mock.Anything).
			Return(queries.CheckDeliveryWindowQueryResponse{Valid: true}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/delivery-window/check", `{"deliveryAt":"2026-10-22T12:00:00+02:00"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid":true}`, rec.Body.String())
	})

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(t)
		f.checkWindow.On("Handle", mock.Anything, mock.Anything).Return(queries.CheckDeliveryWindowQueryResponse{
			Valid:  false,
			Reason: "closed",
			Detail: "closed on sunday",
		}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/delivery-window/check", `{"deliveryAt":"2026-10-25T12:00:00+01:00"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid":false,"reason":"closed","detail":"closed on sunday"}`, rec.Body.String())
	})

	t.Run("schedule unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.checkWindow.On("Handle", mock.Anything, mock.Anything).
			Return(queries.CheckDeliveryWindowQueryResponse{}, errors.New("schedule store down")).Once()

		rec := f.do(http.MethodPost, "/api/v1/delivery-window/check", `{"deliveryAt":"2026-10-22T12:00:00+02:00"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	f := newFixture(t)

	health := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "Healthy", health.Body.String())

	metrics := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)

	missing := f.do(http.MethodGet, "/api/v1/unknown", "")
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, int32(http.StatusNotFound), decodeError(t, missing).Code)
}
