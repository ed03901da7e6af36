package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"go.uber.org/zap"
)

const (
	// DefaultMaterialReturnPeriod is how long a customer keeps lent equipment after delivery.
	DefaultMaterialReturnPeriod = 10 * 24 * time.Hour

	// StaffCancellationReason is recorded when staff cancel through a status
	// change without giving a reason.
	StaffCancellationReason = "cancelled by staff"
)

// ChangeOrderStatusCommandHandler moves orders along their lifecycle.
//
// Moving to order.WaitingMaterialReturn requires a material loan and sets the
// return deadline once. Moving to order.Cancelled goes through the cancellation
// rules and records the command's reason, or StaffCancellationReason.
type ChangeOrderStatusCommandHandler struct {
	uowFactory   OrderUoWFactory
	stateMachine order.StateMachine
	returnPeriod time.Duration
	events       statusEvents
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// A non-positive returnPeriod falls back to DefaultMaterialReturnPeriod.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	stateMachine order.StateMachine,
	returnPeriod time.Duration,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	if returnPeriod <= 0 {
		returnPeriod = DefaultMaterialReturnPeriod
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		stateMachine: stateMachine,
		returnPeriod: returnPeriod,
		events:       newStatusEvents(publisher, logger.With(zap.String("component", "change_order_status_command_handler"))),
	}
}

// Handle applies the status change inside a transaction.
// Illegal moves are returned as *order.IllegalTransitionError and leave the order untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	if err = h.apply(o, cmd); err != nil {
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

func (h *ChangeOrderStatusCommandHandler) apply(o *order.Order, cmd ChangeOrderStatusCommand) error {
	to := cmd.Status()
	if to == order.Cancelled {
		reason := cmd.Reason()
		if reason == "" {
			reason = StaffCancellationReason
		}
		return h.stateMachine.Cancel(o, reason)
	}

	if to == order.WaitingMaterialReturn && !o.HasMaterialLoan() && o.Status().CanTransitionTo(to) {
		return order.ErrNoMaterialLoan
	}

	if err := h.stateMachine.ChangeStatus(o, to); err != nil {
		return err
	}

	if to == order.WaitingMaterialReturn {
		return o.SetMaterialReturnDeadline(h.stateMachine.Now().Add(h.returnPeriod))
	}
	return nil
}
