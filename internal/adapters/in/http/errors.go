package http

import (
	"errors"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/generated/servers"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError maps a use case error to its HTTP status. Unexpected errors are
// logged and answered with fallback so that internals do not leak.
func (s *Server) writeError(ctx echo.Context, err error, fallback string) error {
	var windowErr *services.DeliveryWindowError
	if errors.As(err, &windowErr) {
		reason := windowErr.Reason.Code()
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: windowErr.Error(),
			Reason:  &reason,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrOrderNotCancellable),
		errors.Is(err, order.ErrNoMaterialLoan),
		errors.Is(err, ports.ErrOrderModifiedConcurrently):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrNotEnoughPersons):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(fallback,
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes or malformed path parameters, with the API error model.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled error", zap.String("path", ctx.Path()), zap.Error(err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = errorJSON(ctx, code, message)
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}
