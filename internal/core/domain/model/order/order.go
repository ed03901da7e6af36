package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// DefaultCancellationReason is recorded when a cancellation carries no reason.
const DefaultCancellationReason = "cancelled by customer"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyInitialized is returned when Initialize runs twice on the same order.
	ErrOrderAlreadyInitialized = errors.New("order is already initialized")

	// ErrOrderIsNotInitialized is returned when a transition is requested before Initialize.
	ErrOrderIsNotInitialized = errors.New("order is not initialized")

	// ErrOrderNotCancellable carries the user facing cancellation refusal.
	ErrOrderNotCancellable = errors.New("this order can no longer be cancelled")

	// ErrNoMaterialLoan is returned for material operations on an order without lent equipment.
	ErrNoMaterialLoan = errors.New("order has no material loan")
)

// Details are the snapshot values an order is created from.
type Details struct {
	Customer         Customer
	MenuName         string
	PricePerPerson   kernel.Money
	NumberOfPersons  int
	DeliveryAt       time.Time
	DeliveryDistance *kernel.Kilometers
	Pricing          kernel.PriceBreakdown
	HasMaterialLoan  bool
}

// Order is the aggregate root of the catering domain.
//
// Order follows these invariants:
//   - Total price equals subtotal + delivery cost - discount (absent discount counts as zero)
//   - The status history only grows, one entry per status held
//   - Accepted, completed and cancelled timestamps are set once and never cleared
//   - The order number is assigned once by Initialize
//   - Status changes follow the transition table of Status
type Order struct {
	id     int64
	number kernel.OrderNumber

	customer Customer

	menuName        string
	pricePerPerson  kernel.Money
	numberOfPersons int

	deliveryAt       time.Time
	deliveryDistance *kernel.Kilometers

	pricing kernel.PriceBreakdown

	status  Status
	history []HistoryEntry

	createdAt   time.Time
	updatedAt   time.Time
	acceptedAt  *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	hasMaterialLoan        bool
	materialReturnDeadline *time.Time
	materialReturned       bool

	cancellationReason *string

	isConstructed bool
}

// NewOrder validates the snapshot values and returns an order that still has to
// be initialized. Use StateMachine.Initialize to give it its number and first status.
func NewOrder(d Details) (*Order, error) {
	o := &Order{
		hasMaterialLoan: d.HasMaterialLoan,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setCustomer(d.Customer),
		o.setMenu(d.MenuName, d.PricePerPerson, d.NumberOfPersons),
		o.setDelivery(d.DeliveryAt, d.DeliveryDistance),
	); err != nil {
		return nil, err
	}

	if err := o.setPricing(d.Pricing); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Initialize stamps creation times, assigns the order number and records the
// initial Pending status. It fails if the order already has a number.
func (o *Order) Initialize(at time.Time, number kernel.OrderNumber, pendingLabel string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.number.IsZero() || o.status != Unknown {
		return ErrOrderAlreadyInitialized
	}
	if err := number.Validate(); err != nil {
		return err
	}

	if o.createdAt.IsZero() {
		o.createdAt = at
	}
	if o.updatedAt.IsZero() {
		o.updatedAt = at
	}

	o.number = number
	o.status = Pending
	o.history = append(o.history, HistoryEntry{Status: Pending, Label: pendingLabel, ChangedAt: at})
	o.materialReturned = false
	return nil
}

// ChangeStatus moves the order to status to if the transition table allows it.
// On success the new status is appended to the history, updatedAt is set and
// the milestone timestamp of the reached status is stamped if still unset.
// On failure the order is left unchanged.
func (o *Order) ChangeStatus(to Status, label string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status == Unknown {
		return ErrOrderIsNotInitialized
	}

	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.history = append(o.history, HistoryEntry{Status: next, Label: label, ChangedAt: at})
	o.status = next
	o.updatedAt = at

	switch next {
	case Validated:
		o.acceptedAt = stampOnce(o.acceptedAt, at)
	case Completed:
		o.completedAt = stampOnce(o.completedAt, at)
	case Cancelled:
		o.cancelledAt = stampOnce(o.cancelledAt, at)
	default:
	}

	return nil
}

// Cancel cancels the order if its status is still cancellable and records reason,
// falling back to DefaultCancellationReason when reason is blank.
func (o *Order) Cancel(reason string, label string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.IsCancellable() {
		return fmt.Errorf("%w (status %s)", ErrOrderNotCancellable, o.status)
	}

	if err := o.ChangeStatus(Cancelled, label, at); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancellationReason
	}
	o.cancellationReason = &reason
	return nil
}

// SetMaterialReturnDeadline records when lent equipment is due. The deadline is
// set once; later calls keep the first value.
func (o *Order) SetMaterialReturnDeadline(deadline time.Time) error {
	if !o.hasMaterialLoan {
		return ErrNoMaterialLoan
	}
	if o.materialReturnDeadline == nil {
		o.materialReturnDeadline = &deadline
	}
	return nil
}

// MarkMaterialReturned flags the lent equipment as returned. The order must be
// waiting for that return.
func (o *Order) MarkMaterialReturned(at time.Time) error {
	if !o.hasMaterialLoan {
		return ErrNoMaterialLoan
	}
	if o.status != WaitingMaterialReturn {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to return material", o.status),
		)
	}
	o.materialReturned = true
	o.updatedAt = at
	return nil
}

// IsMaterialReturnOverdue reports whether lent equipment is late at now.
func (o *Order) IsMaterialReturnOverdue(now time.Time) bool {
	return o.status == WaitingMaterialReturn &&
		!o.materialReturned &&
		o.materialReturnDeadline != nil &&
		now.After(*o.materialReturnDeadline)
}

// AssignID stores the identifier given by the persistence layer.
func (o *Order) AssignID(id int64) {
	o.id = id
}

func (o *Order) ID() int64                            { return o.id }
func (o *Order) Number() kernel.OrderNumber           { return o.number }
func (o *Order) Customer() Customer                   { return o.customer }
func (o *Order) MenuName() string                     { return o.menuName }
func (o *Order) PricePerPerson() kernel.Money         { return o.pricePerPerson }
func (o *Order) NumberOfPersons() int                 { return o.numberOfPersons }
func (o *Order) DeliveryAt() time.Time                { return o.deliveryAt }
func (o *Order) DeliveryDistance() *kernel.Kilometers { return o.deliveryDistance }
func (o *Order) Pricing() kernel.PriceBreakdown       { return o.pricing }
func (o *Order) MenuSubtotal() kernel.Money           { return o.pricing.MenuSubtotal }
func (o *Order) DeliveryCost() kernel.Money           { return o.pricing.DeliveryCost }
func (o *Order) Discount() *kernel.Money              { return o.pricing.Discount }
func (o *Order) TotalPrice() kernel.Money             { return o.pricing.Total }
func (o *Order) Status() Status                       { return o.status }
func (o *Order) CreatedAt() time.Time                 { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                 { return o.updatedAt }
func (o *Order) AcceptedAt() *time.Time               { return o.acceptedAt }
func (o *Order) CompletedAt() *time.Time              { return o.completedAt }
func (o *Order) CancelledAt() *time.Time              { return o.cancelledAt }
func (o *Order) HasMaterialLoan() bool                { return o.hasMaterialLoan }
func (o *Order) MaterialReturnDeadline() *time.Time   { return o.materialReturnDeadline }
func (o *Order) MaterialReturned() bool               { return o.materialReturned }
func (o *Order) CancellationReason() *string          { return o.cancellationReason }

// History returns a copy of the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	out := make([]HistoryEntry, len(o.history))
	copy(out, o.history)
	return out
}

// IsCancellable reports whether the order may still be cancelled.
func (o *Order) IsCancellable() bool {
	return o.status.IsCancellable()
}

// IsEditable reports whether the order content may still be modified.
func (o *Order) IsEditable() bool {
	return o.status.IsEditable()
}

// NextStatuses returns the statuses the order may move to.
func (o *Order) NextStatuses() []Status {
	return o.status.NextStatuses()
}

func (o *Order) setCustomer(c Customer) error {
	if c.email == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = c
	return nil
}

func (o *Order) setMenu(name string, pricePerPerson kernel.Money, persons int) error {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		requireText("menuName", name),
		nonNegative("pricePerPerson", pricePerPerson),
		positive("numberOfPersons", persons),
	); err != nil {
		return err
	}

	o.menuName = name
	o.pricePerPerson = pricePerPerson
	o.numberOfPersons = persons
	return nil
}

func (o *Order) setDelivery(at time.Time, distance *kernel.Kilometers) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveryAt")
	}
	if distance != nil && *distance < 0 {
		return errs.NewValueIsOutOfRangeError("distanceKm", int(*distance), 0, int(kernel.MaxKilometers))
	}

	o.deliveryAt = at
	if distance != nil {
		d := *distance
		o.deliveryDistance = &d
	}
	return nil
}

func (o *Order) setPricing(p kernel.PriceBreakdown) error {
	if err := p.Validate(); err != nil {
		return err
	}

	expected := o.pricePerPerson.Times(int64(o.numberOfPersons))
	if p.MenuSubtotal != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"menuSubtotal",
			fmt.Errorf("%d is not %d x %d", p.MenuSubtotal, o.pricePerPerson, o.numberOfPersons),
		)
	}

	if p.Discount != nil {
		d := *p.Discount
		p.Discount = &d
	}
	o.pricing = p
	return nil
}

func stampOnce(current *time.Time, at time.Time) *time.Time {
	if current != nil {
		return current
	}
	return &at
}

func nonNegative(param string, m kernel.Money) error {
	if m < 0 {
		return errs.NewValueIsOutOfRangeError(param, int64(m), 0, int64(kernel.MaxMoney))
	}
	return nil
}

func positive(param string, n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not greater than 0", n))
	}
	return nil
}
