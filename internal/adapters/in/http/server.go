package http

import (
	"context"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.OrderNumber, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	ReturnMaterialHandler interface {
		Handle(ctx context.Context, cmd commands.ReturnMaterialCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	QuotePriceHandler interface {
		Handle(ctx context.Context, query queries.QuotePriceQuery) (queries.QuotePriceQueryResponse, error)
	}
	CheckDeliveryWindowHandler interface {
		Handle(ctx context.Context, query queries.CheckDeliveryWindowQuery) (queries.CheckDeliveryWindowQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	ChangeOrderStatus   ChangeOrderStatusHandler
	CancelOrder         CancelOrderHandler
	ReturnMaterial      ReturnMaterialHandler
	GetOrder            GetOrderHandler
	QuotePrice          QuotePriceHandler
	CheckDeliveryWindow CheckDeliveryWindowHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http_server")),
	}
}

// CreateOrder handles POST /api/v1/orders - creates a pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := order.NewCustomer(
		body.Customer.Firstname,
		body.Customer.Lastname,
		body.Customer.Email,
		deref(body.Customer.Phone),
		body.Customer.Address,
	)
	if err != nil {
		return badRequest(ctx, "Invalid customer: "+err.Error())
	}

	menu := commands.Menu{
		Name:           body.Menu.Name,
		PricePerPerson: kernel.Money(body.Menu.PricePerPersonCents),
		MinPersons:     body.Menu.MinPersons,
	}

	cmd, err := commands.NewCreateOrderCommand(
		customer,
		body.City,
		menu,
		body.NumberOfPersons,
		body.DeliveryAt,
		toKilometers(body.DistanceKm),
		body.HasMaterialLoan != nil && *body.HasMaterialLoan,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	number, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{OrderNumber: number.String()})
}

// GetOrder handles GET /api/v1/orders/{orderNumber} - returns the order read model.
func (s *Server) GetOrder(ctx echo.Context, orderNumber string) error {
	number, err := kernel.ParseOrderNumber(orderNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderNumber}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderNumber string) error {
	number, err := kernel.ParseOrderNumber(orderNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(number, status, deref(body.Reason))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderNumber}/cancel. The body is optional.
func (s *Server) CancelOrder(ctx echo.Context, orderNumber string) error {
	number, err := kernel.ParseOrderNumber(orderNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body servers.Cancellation
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	cmd, err := commands.NewCancelOrderCommand(number, deref(body.Reason))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnMaterial handles POST /api/v1/orders/{orderNumber}/material-return.
func (s *Server) ReturnMaterial(ctx echo.Context, orderNumber string) error {
	number, err := kernel.ParseOrderNumber(orderNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReturnMaterialCommand(number)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ReturnMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to record material return")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuotePrice handles POST /api/v1/pricing/quote - prices an order without storing it.
func (s *Server) QuotePrice(ctx echo.Context) error {
	var body servers.QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query := queries.NewQuotePriceQuery(
		kernel.Money(body.PricePerPersonCents),
		body.NumberOfPersons,
		body.MenuMinPersons,
		body.City,
		toKilometers(body.DistanceKm),
	)

	quote, err := s.handlers.QuotePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to quote price")
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		MenuSubtotal: toMoney(quote.Breakdown.MenuSubtotal),
		DeliveryCost: toMoney(quote.Breakdown.DeliveryCost),
		Discount:     toOptionalMoney(quote.Breakdown.Discount),
		TotalPrice:   toMoney(quote.Breakdown.Total),
		IsLocalZone:  quote.IsLocalZone,
	})
}

// CheckDeliveryWindow handles POST /api/v1/delivery-window/check.
// Rejections are a normal answer and are returned with status 200.
func (s *Server) CheckDeliveryWindow(ctx echo.Context) error {
	var body servers.DeliveryWindowRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewCheckDeliveryWindowQuery(body.DeliveryAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	verdict, err := s.handlers.CheckDeliveryWindow.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to check delivery window")
	}

	response := servers.DeliveryWindowVerdict{Valid: verdict.Valid}
	if !verdict.Valid {
		reason := servers.DeliveryWindowVerdictReason(verdict.Reason)
		response.Reason = &reason
		if verdict.Detail != "" {
			response.Detail = &verdict.Detail
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toKilometers(km *int) *kernel.Kilometers {
	if km == nil {
		return nil
	}
	d := kernel.Kilometers(*km)
	return &d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
