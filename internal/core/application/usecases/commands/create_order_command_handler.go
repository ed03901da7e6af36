package commands

import (
	"context"
	"errors"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"

	"go.uber.org/zap"
)

// MaxOrderNumberAttempts bounds how many order numbers are drawn before giving up.
const MaxOrderNumberAttempts = 3

// CreateOrderCommandHandler handles the business logic for order creation.
// Checks the delivery window, prices the order, initializes it as Pending and
// stores it, drawing a new order number when the drawn one is already taken.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, stateMachine, calculator, validator, publisher, logger)
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s is pending validation", number)
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	stateMachine order.StateMachine
	pricing      services.PricingCalculator
	window       DeliveryWindowValidator
	events       statusEvents
	logger       *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	stateMachine order.StateMachine,
	pricing services.PricingCalculator,
	window DeliveryWindowValidator,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	logger = logger.With(zap.String("component", "create_order_command_handler"))
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		stateMachine: stateMachine,
		pricing:      pricing,
		window:       window,
		events:       newStatusEvents(publisher, logger),
		logger:       logger,
	}
}

// Handle processes the order creation command and returns the number of the new order.
// A rejected delivery time is returned as *services.DeliveryWindowError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err := h.window.Validate(ctx, cmd.DeliveryAt()); err != nil {
		return kernel.OrderNumber{}, err
	}

	pricing, err := h.pricing.Calculate(services.PricingRequest{
		PricePerPerson:  cmd.Menu().PricePerPerson,
		NumberOfPersons: cmd.NumberOfPersons(),
		MenuMinPersons:  cmd.Menu().MinPersons,
		IsLocalZone:     h.pricing.IsLocalZone(cmd.City()),
		Distance:        cmd.Distance(),
	})
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	details := order.Details{
		Customer:         cmd.Customer(),
		MenuName:         cmd.Menu().Name,
		PricePerPerson:   cmd.Menu().PricePerPerson,
		NumberOfPersons:  cmd.NumberOfPersons(),
		DeliveryAt:       cmd.DeliveryAt(),
		DeliveryDistance: cmd.Distance(),
		Pricing:          pricing,
		HasMaterialLoan:  cmd.HasMaterialLoan(),
	}

	for attempt := 1; attempt <= MaxOrderNumberAttempts; attempt++ {
		o, buildErr := order.NewOrder(details)
		if buildErr != nil {
			return kernel.OrderNumber{}, buildErr
		}
		if err = h.stateMachine.Initialize(o); err != nil {
			return kernel.OrderNumber{}, err
		}

		err = h.store(ctx, o)
		if errors.Is(err, ports.ErrOrderNumberTaken) {
			h.logger.Info("order number already taken, drawing another one",
				zap.String("order_number", o.Number().String()),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return kernel.OrderNumber{}, err
		}

		h.events.publish(ctx, o, order.Unknown)
		return o.Number(), nil
	}

	return kernel.OrderNumber{}, fmt.Errorf("no free order number after %d attempts: %w",
		MaxOrderNumberAttempts, ports.ErrOrderNumberTaken)
}

func (h *CreateOrderCommandHandler) store(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
