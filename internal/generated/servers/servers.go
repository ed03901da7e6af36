// Package servers holds the HTTP contract of the catering API: the OpenAPI
// document, the request and response models and the echo routing that binds
// path parameters before calling a ServerInterface.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create a catering order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Get an order with its history
	// (GET /api/v1/orders/{orderNumber})
	GetOrder(ctx echo.Context, orderNumber string) error
	// Move an order to another status
	// (POST /api/v1/orders/{orderNumber}/status)
	ChangeOrderStatus(ctx echo.Context, orderNumber string) error
	// Cancel an order that is still cancellable
	// (POST /api/v1/orders/{orderNumber}/cancel)
	CancelOrder(ctx echo.Context, orderNumber string) error
	// Record the return of lent equipment
	// (POST /api/v1/orders/{orderNumber}/material-return)
	ReturnMaterial(ctx echo.Context, orderNumber string) error
	// Price an order without creating it
	// (POST /api/v1/pricing/quote)
	QuotePrice(ctx echo.Context) error
	// Tell whether a delivery time would be accepted now
	// (POST /api/v1/delivery-window/check)
	CheckDeliveryWindow(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderNumber)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderNumber)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderNumber)
}

// ReturnMaterial converts echo context to params.
func (w *ServerInterfaceWrapper) ReturnMaterial(ctx echo.Context) error {
	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReturnMaterial(ctx, orderNumber)
}

// QuotePrice converts echo context to params.
func (w *ServerInterfaceWrapper) QuotePrice(ctx echo.Context) error {
	return w.Handler.QuotePrice(ctx)
}

// CheckDeliveryWindow converts echo context to params.
func (w *ServerInterfaceWrapper) CheckDeliveryWindow(ctx echo.Context) error {
	return w.Handler.CheckDeliveryWindow(ctx)
}

func bindOrderNumber(ctx echo.Context) (string, error) {
	var orderNumber string
	err := runtime.BindStyledParameterWithOptions("simple", "orderNumber", ctx.Param("orderNumber"), &orderNumber,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNumber: %s", err))
	}
	return orderNumber, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// used to register handlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderNumber", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderNumber/status", wrapper.ChangeOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderNumber/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderNumber/material-return", wrapper.ReturnMaterial)
	router.POST(baseURL+"/api/v1/pricing/quote", wrapper.QuotePrice)
	router.POST(baseURL+"/api/v1/delivery-window/check", wrapper.CheckDeliveryWindow)
}

// RawSpec returns the OpenAPI document in its YAML form.
func RawSpec() []byte {
	out := make([]byte, len(openAPIDocument))
	copy(out, openAPIDocument)
	return out
}

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return swagger, nil
}
