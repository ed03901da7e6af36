package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"go.uber.org/zap"
)

// CancelOrderCommandHandler cancels orders that are still cancellable.
// Refusals wrap order.ErrOrderNotCancellable, whose message is shown to customers as is.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	stateMachine order.StateMachine
	events       statusEvents
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	stateMachine order.StateMachine,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		stateMachine: stateMachine,
		events:       newStatusEvents(publisher, logger.With(zap.String("component", "cancel_order_command_handler"))),
	}
}

// Handle cancels the order inside a transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	from := o.Status()
	if err = h.stateMachine.Cancel(o, cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.publish(ctx, o, from)
	return nil
}
