package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks to cancel an order. An empty reason is replaced by
// the default cancellation reason when handled.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber
	reason string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation request for the order with number.
func NewCancelOrderCommand(number kernel.OrderNumber, reason string) (CancelOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		number: number,
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderNumber() kernel.OrderNumber { return c.number }
func (c CancelOrderCommand) Reason() string                  { return c.reason }
