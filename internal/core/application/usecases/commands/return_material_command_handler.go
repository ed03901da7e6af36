package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"go.uber.org/zap"
)

// ReturnMaterialCommandHandler flags lent equipment as returned and completes the order.
// The order must be in order.WaitingMaterialReturn.
type ReturnMaterialCommandHandler struct {
	uowFactory   OrderUoWFactory
	stateMachine order.StateMachine
	events       statusEvents
	logger       *zap.Logger
}

func NewReturnMaterialCommandHandler(
	uowFactory OrderUoWFactory,
	stateMachine order.StateMachine,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) ReturnMaterialCommandHandler {
	logger = logger.With(zap.String("component", "return_material_command_handler"))
	return ReturnMaterialCommandHandler{
		uowFactory:   uowFactory,
		stateMachine: stateMachine,
		events:       newStatusEvents(publisher, logger),
		logger:       logger,
	}
}

// Handle marks the material as returned and moves the order to order.Completed
// in a single transaction.
func (h *ReturnMaterialCommandHandler) Handle(ctx context.Context, cmd ReturnMaterialCommand) error {
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

	now := h.stateMachine.Now()
	late := o.IsMaterialReturnOverdue(now)

	from := o.Status()
	if err = o.MarkMaterialReturned(now); err != nil {
		return err
	}

	if err = h.stateMachine.ChangeStatus(o, order.Completed); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if late {
		h.logger.Warn("material returned after deadline",
			zap.String("order_number", o.Number().String()),
			zap.Timep("deadline", o.MaterialReturnDeadline()),
		)
	}

	h.events.publish(ctx, o, from)
	return nil
}
