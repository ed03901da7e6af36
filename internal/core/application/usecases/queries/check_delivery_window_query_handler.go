package queries

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/services"
)

// DeliveryWindowValidator accepts or rejects a requested delivery time.
type DeliveryWindowValidator interface {
	Validate(ctx context.Context, candidate time.Time) error
}

// CheckDeliveryWindowQueryHandler reports whether a delivery time passes the
// lead time and opening hours rules.
type CheckDeliveryWindowQueryHandler struct {
	window DeliveryWindowValidator
}

func NewCheckDeliveryWindowQueryHandler(window DeliveryWindowValidator) CheckDeliveryWindowQueryHandler {
	return CheckDeliveryWindowQueryHandler{window: window}
}

// Handle returns a response for accepted and rejected times alike; the error
// is only set when the opening schedule could not be read.
func (h CheckDeliveryWindowQueryHandler) Handle(
	ctx context.Context,
	query CheckDeliveryWindowQuery,
) (CheckDeliveryWindowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckDeliveryWindowQueryResponse{}, err
	}

	err := h.window.Validate(ctx, query.candidate)
	if err == nil {
		return CheckDeliveryWindowQueryResponse{Valid: true}, nil
	}

	var rejection *services.DeliveryWindowError
	if errors.As(err, &rejection) {
		return CheckDeliveryWindowQueryResponse{
			Valid:  false,
			Reason: rejection.Reason.Code(),
			Detail: rejection.Detail,
		}, nil
	}

	return CheckDeliveryWindowQueryResponse{}, err
}
