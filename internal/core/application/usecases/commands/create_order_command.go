package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNotEnoughPersons = errors.New("number of persons is below the menu minimum")
)

// Menu is the menu snapshot an order is created from.
type Menu struct {
	Name           string
	PricePerPerson kernel.Money
	MinPersons     int
}

// CreateOrderCommand represents a customer request to order a catering menu.
// Carries copies of the customer and menu data, never references to them.
//
// Example:
//
//	customer, _ := order.NewCustomer("Camille", "Martin", "camille@example.com", "", "12 rue Sainte-Catherine")
//	menu := commands.Menu{Name: "Menu de Noël", PricePerPerson: 5000, MinPersons: 5}
//	cmd, err := commands.NewCreateOrderCommand(customer, "Bordeaux", menu, 10, deliveryAt, nil, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	number, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer        order.Customer
	city            string
	menu            Menu
	numberOfPersons int
	deliveryAt      time.Time
	distance        *kernel.Kilometers
	hasMaterialLoan bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new catering order.
// The number of persons must reach the menu minimum. A nil distance is treated
// as zero kilometers by the pricing.
func NewCreateOrderCommand(
	customer order.Customer,
	city string,
	menu Menu,
	numberOfPersons int,
	deliveryAt time.Time,
	distance *kernel.Kilometers,
	hasMaterialLoan bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		hasMaterialLoan: hasMaterialLoan,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer, city),
		cmd.setMenu(menu, numberOfPersons),
		cmd.setDelivery(deliveryAt, distance),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() order.Customer     { return c.customer }
func (c CreateOrderCommand) City() string                 { return c.city }
func (c CreateOrderCommand) Menu() Menu                   { return c.menu }
func (c CreateOrderCommand) NumberOfPersons() int         { return c.numberOfPersons }
func (c CreateOrderCommand) DeliveryAt() time.Time        { return c.deliveryAt }
func (c CreateOrderCommand) Distance() *kernel.Kilometers { return c.distance }
func (c CreateOrderCommand) HasMaterialLoan() bool        { return c.hasMaterialLoan }

func (c *CreateOrderCommand) setCustomer(customer order.Customer, city string) error {
	city = strings.TrimSpace(city)
	if err := errors.Join(
		requireCustomer(customer),
		requireText("city", city),
	); err != nil {
		return err
	}

	c.customer = customer
	c.city = city
	return nil
}

func (c *CreateOrderCommand) setMenu(menu Menu, persons int) error {
	menu.Name = strings.TrimSpace(menu.Name)
	if err := errors.Join(
		requireText("menuName", menu.Name),
		validateMoney("pricePerPerson", menu.PricePerPerson),
		validateMinPersons(menu.MinPersons),
	); err != nil {
		return err
	}

	if persons <= 0 {
		return errs.NewValueIsOutOfRangeError("numberOfPersons", persons, 1, "unbounded")
	}
	if persons < menu.MinPersons {
		return fmt.Errorf("%w: %d persons ordered, menu %q requires %d",
			ErrNotEnoughPersons, persons, menu.Name, menu.MinPersons)
	}

	c.menu = menu
	c.numberOfPersons = persons
	return nil
}

func (c *CreateOrderCommand) setDelivery(at time.Time, distance *kernel.Kilometers) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveryAt")
	}
	if distance != nil {
		if _, err := kernel.NewKilometers(distance.Int()); err != nil {
			return err
		}
		d := *distance
		c.distance = &d
	}

	c.deliveryAt = at
	return nil
}

func requireCustomer(c order.Customer) error {
	if c.Email() == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	return nil
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func validateMoney(param string, m kernel.Money) error {
	if _, err := kernel.NewMoney(m.Cents()); err != nil {
		return errs.NewValueIsOutOfRangeError(param, m.Cents(), 0, int64(kernel.MaxMoney))
	}
	return nil
}

func validateMinPersons(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("menuMinPersons", n, 0, "unbounded")
	}
	return nil
}
