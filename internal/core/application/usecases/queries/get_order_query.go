// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the API, never domain aggregates.
package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its history and the actions it allows.
//
// Example:
//
//	number, _ := kernel.ParseOrderNumber("ORD-20261018-00042")
//	query, _ := NewGetOrderQuery(number)
//	handler := NewGetOrderQueryHandler(db, labels)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("%s is %s\n", view.Number, view.Status.Label)
type GetOrderQuery struct {
	number kernel.OrderNumber
	guard  guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with number.
func NewGetOrderQuery(number kernel.OrderNumber) (GetOrderQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNumber returns the number of the requested order.
func (q GetOrderQuery) OrderNumber() kernel.OrderNumber {
	return q.number
}

// StatusView is a status with its display metadata.
type StatusView struct {
	Code       string
	Label      string
	BadgeClass string
	Icon       string
}

// CustomerView is the customer snapshot stored with the order.
type CustomerView struct {
	Firstname string
	Lastname  string
	Email     string
	Phone     string
	Address   string
}

// HistoryView is one entry of the status history. Label is the label stored
// when the status was reached.
type HistoryView struct {
	Status    StatusView
	Label     string
	ChangedAt time.Time
}

// GetOrderQueryResponse is the complete read model of an order.
type GetOrderQueryResponse struct {
	Number   string
	Status   StatusView
	Customer CustomerView

	MenuName           string
	PricePerPerson     kernel.Money
	NumberOfPersons    int
	DeliveryAt         time.Time
	DeliveryDistanceKm *int

	MenuSubtotal kernel.Money
	DeliveryCost kernel.Money
	Discount     *kernel.Money
	TotalPrice   kernel.Money

	CreatedAt   time.Time
	UpdatedAt   time.Time
	AcceptedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	HasMaterialLoan        bool
	MaterialReturnDeadline *time.Time
	MaterialReturned       bool
	CancellationReason     *string

	History          []HistoryView
	NextStatuses     []StatusView
	IsCancellable    bool
	IsEditable       bool
	CanReceiveReview bool
}
