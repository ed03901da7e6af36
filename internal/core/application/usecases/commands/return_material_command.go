package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrReturnMaterialCommandIsNotConstructed = errors.New(
	"ReturnMaterialCommand must be created via NewReturnMaterialCommand constructor",
)

// ReturnMaterialCommand records that the equipment lent with an order came back.
type ReturnMaterialCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewReturnMaterialCommand(number kernel.OrderNumber) (ReturnMaterialCommand, error) {
	if err := number.Validate(); err != nil {
		return ReturnMaterialCommand{}, err
	}

	return ReturnMaterialCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnMaterialCommand) Validate() error {
	return c.guard.Validate(ErrReturnMaterialCommandIsNotConstructed)
}

// OrderNumber returns the number of the order whose equipment came back.
func (c ReturnMaterialCommand) OrderNumber() kernel.OrderNumber {
	return c.number
}
