package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// Snapshot is the complete persisted state of an order.
// Repositories build it from storage and hand it to RestoreOrder.
type Snapshot struct {
	ID                     int64
	Number                 kernel.OrderNumber
	Details                Details
	Status                 Status
	History                []HistoryEntry
	CreatedAt              time.Time
	UpdatedAt              time.Time
	AcceptedAt             *time.Time
	CompletedAt            *time.Time
	CancelledAt            *time.Time
	MaterialReturnDeadline *time.Time
	MaterialReturned       bool
	CancellationReason     *string
}

// RestoreOrder rebuilds an order from persistence, re-checking the invariants
// that storage cannot guarantee on its own.
func RestoreOrder(s Snapshot) (*Order, error) {
	o, err := NewOrder(s.Details)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		s.Number.Validate(),
		s.Status.Validate(),
		validateHistory(s.Status, s.History),
	); err != nil {
		return nil, err
	}

	o.id = s.ID
	o.number = s.Number
	o.status = s.Status
	o.history = append([]HistoryEntry(nil), s.History...)
	o.createdAt = s.CreatedAt
	o.updatedAt = s.UpdatedAt
	o.acceptedAt = s.AcceptedAt
	o.completedAt = s.CompletedAt
	o.cancelledAt = s.CancelledAt
	o.materialReturnDeadline = s.MaterialReturnDeadline
	o.materialReturned = s.MaterialReturned
	o.cancellationReason = s.CancellationReason
	return o, nil
}

// Snapshot exports the order state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:     o.id,
		Number: o.number,
		Details: Details{
			Customer:         o.customer,
			MenuName:         o.menuName,
			PricePerPerson:   o.pricePerPerson,
			NumberOfPersons:  o.numberOfPersons,
			DeliveryAt:       o.deliveryAt,
			DeliveryDistance: o.deliveryDistance,
			Pricing:          o.pricing,
			HasMaterialLoan:  o.hasMaterialLoan,
		},
		Status:                 o.status,
		History:                o.History(),
		CreatedAt:              o.createdAt,
		UpdatedAt:              o.updatedAt,
		AcceptedAt:             o.acceptedAt,
		CompletedAt:            o.completedAt,
		CancelledAt:            o.cancelledAt,
		MaterialReturnDeadline: o.materialReturnDeadline,
		MaterialReturned:       o.materialReturned,
		CancellationReason:     o.cancellationReason,
	}
}

// validateHistory checks that the history starts at Pending, follows the
// transition table and ends at the current status.
func validateHistory(current Status, history []HistoryEntry) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("status history")
	}
	if history[0].Status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status history",
			fmt.Errorf("first entry is %s, expected %s", history[0].Status, Pending),
		)
	}
	for i := 1; i < len(history); i++ {
		if !history[i-1].Status.CanTransitionTo(history[i].Status) {
			return errs.NewValueIsInvalidErrorWithCause(
				"status history",
				&IllegalTransitionError{From: history[i-1].Status, To: history[i].Status},
			)
		}
	}
	if last := history[len(history)-1].Status; last != current {
		return errs.NewValueIsInvalidErrorWithCause(
			"status history",
			fmt.Errorf("last entry is %s, current status is %s", last, current),
		)
	}
	return nil
}
