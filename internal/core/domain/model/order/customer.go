package order

import (
	"errors"
	"net/mail"
	"strings"

	"catering/internal/pkg/errs"
)

// Customer is the contact and address snapshot copied into an order at creation.
// The order never references the customer's address book afterwards.
type Customer struct {
	firstname string
	lastname  string
	email     string
	phone     string
	address   string
}

// NewCustomer validates and builds a customer snapshot.
// Firstname, lastname, email and address are required; phone is optional.
func NewCustomer(firstname, lastname, email, phone, address string) (Customer, error) {
	c := Customer{
		firstname: strings.TrimSpace(firstname),
		lastname:  strings.TrimSpace(lastname),
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
		address:   strings.TrimSpace(address),
	}

	var emailErr error
	if c.email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	} else if _, err := mail.ParseAddress(c.email); err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	if err := errors.Join(
		requireText("firstname", c.firstname),
		requireText("lastname", c.lastname),
		emailErr,
		requireText("address", c.address),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Firstname() string { return c.firstname }
func (c Customer) Lastname() string  { return c.lastname }
func (c Customer) Email() string     { return c.email }
func (c Customer) Phone() string     { return c.phone }
func (c Customer) Address() string   { return c.address }

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
