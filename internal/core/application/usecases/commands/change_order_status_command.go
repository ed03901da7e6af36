package commands

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to another status.
// Whether the move is legal is decided by the order's transition table when handled.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber
	status order.Status
	reason string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change request for the order with number.
// reason is optional and only recorded when status is order.Cancelled.
func NewChangeOrderStatusCommand(
	number kernel.OrderNumber,
	status order.Status,
	reason string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(number.Validate(), status.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		number: number,
		status: status,
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the number of the order to change.
func (c ChangeOrderStatusCommand) OrderNumber() kernel.OrderNumber {
	return c.number
}

// Status returns the requested status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Reason returns the trimmed cancellation reason, empty when none was given.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}
