// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns hold cents. Timestamps are written from the domain clock, never by gorm.
type OrderDTO struct {
	ID       int64       `gorm:"primaryKey;autoIncrement"`
	Number   string      `gorm:"size:18;not null;uniqueIndex"`
	Customer CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`

	MenuName           string `gorm:"not null"`
	PricePerPerson     int64  `gorm:"not null"`
	NumberOfPersons    int    `gorm:"not null"`
	DeliveryAt         time.Time
	DeliveryDistanceKm *int

	MenuSubtotal int64 `gorm:"not null"`
	DeliveryCost int64 `gorm:"not null"`
	Discount     *int64
	TotalPrice   int64 `gorm:"not null"`

	Status      string    `gorm:"size:32;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	AcceptedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	HasMaterialLoan        bool `gorm:"not null;default:false"`
	MaterialReturnDeadline *time.Time
	MaterialReturned       bool `gorm:"not null;default:false"`
	CancellationReason     *string

	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the customer snapshot embedded in the order row.
type CustomerDTO struct {
	Firstname string `gorm:"not null"`
	Lastname  string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     string
	Address   string `gorm:"not null"`
}

// StatusHistoryDTO is one status reached by an order. Position keeps the
// append order of the history.
type StatusHistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;uniqueIndex:idx_order_status_history_position"`
	Position  int       `gorm:"not null;uniqueIndex:idx_order_status_history_position"`
	Status    string    `gorm:"size:32;not null"`
	Label     string    `gorm:"not null"`
	ChangedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()

	dto := OrderDTO{
		ID:     o.ID(),
		Number: o.Number().String(),
		Customer: CustomerDTO{
			Firstname: customer.Firstname(),
			Lastname:  customer.Lastname(),
			Email:     customer.Email(),
			Phone:     customer.Phone(),
			Address:   customer.Address(),
		},
		MenuName:               o.MenuName(),
		PricePerPerson:         o.PricePerPerson().Cents(),
		NumberOfPersons:        o.NumberOfPersons(),
		DeliveryAt:             o.DeliveryAt(),
		MenuSubtotal:           o.MenuSubtotal().Cents(),
		DeliveryCost:           o.DeliveryCost().Cents(),
		TotalPrice:             o.TotalPrice().Cents(),
		Status:                 o.Status().String(),
		CreatedAt:              o.CreatedAt(),
		UpdatedAt:              o.UpdatedAt(),
		AcceptedAt:             o.AcceptedAt(),
		CompletedAt:            o.CompletedAt(),
		CancelledAt:            o.CancelledAt(),
		HasMaterialLoan:        o.HasMaterialLoan(),
		MaterialReturnDeadline: o.MaterialReturnDeadline(),
		MaterialReturned:       o.MaterialReturned(),
		CancellationReason:     o.CancellationReason(),
	}

	if d := o.DeliveryDistance(); d != nil {
		km := d.Int()
		dto.DeliveryDistanceKm = &km
	}
	if d := o.Discount(); d != nil {
		cents := d.Cents()
		dto.Discount = &cents
	}

	history := o.History()
	dto.History = make([]StatusHistoryDTO, 0, len(history))
	for i, entry := range history {
		dto.History = append(dto.History, StatusHistoryDTO{
			OrderID:   o.ID(),
			Position:  i,
			Status:    entry.Status.String(),
			Label:     entry.Label,
			ChangedAt: entry.ChangedAt,
		})
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// History entries must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.ParseOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.Customer.Firstname,
		dto.Customer.Lastname,
		dto.Customer.Email,
		dto.Customer.Phone,
		dto.Customer.Address,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		s, statusErr := order.ParseStatus(h.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.HistoryEntry{Status: s, Label: h.Label, ChangedAt: h.ChangedAt})
	}

	var distance *kernel.Kilometers
	if dto.DeliveryDistanceKm != nil {
		km := kernel.Kilometers(*dto.DeliveryDistanceKm)
		distance = &km
	}

	var discount *kernel.Money
	if dto.Discount != nil {
		discount = kernel.OptionalMoney(kernel.Money(*dto.Discount))
	}

	return order.RestoreOrder(order.Snapshot{
		ID:     dto.ID,
		Number: number,
		Details: order.Details{
			Customer:         customer,
			MenuName:         dto.MenuName,
			PricePerPerson:   kernel.Money(dto.PricePerPerson),
			NumberOfPersons:  dto.NumberOfPersons,
			DeliveryAt:       dto.DeliveryAt,
			DeliveryDistance: distance,
			Pricing: kernel.PriceBreakdown{
				MenuSubtotal: kernel.Money(dto.MenuSubtotal),
				DeliveryCost: kernel.Money(dto.DeliveryCost),
				Discount:     discount,
				Total:        kernel.Money(dto.TotalPrice),
			},
			HasMaterialLoan: dto.HasMaterialLoan,
		},
		Status:                 status,
		History:                history,
		CreatedAt:              dto.CreatedAt,
		UpdatedAt:              dto.UpdatedAt,
		AcceptedAt:             dto.AcceptedAt,
		CompletedAt:            dto.CompletedAt,
		CancelledAt:            dto.CancelledAt,
		MaterialReturnDeadline: dto.MaterialReturnDeadline,
		MaterialReturned:       dto.MaterialReturned,
		CancellationReason:     dto.CancellationReason,
	})
}
