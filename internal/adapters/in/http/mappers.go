package http

import (
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/generated/servers"
)

func toMoney(m kernel.Money) servers.Money {
	return servers.Money{Cents: int64(m), Amount: m.String()}
}

func toOptionalMoney(m *kernel.Money) *servers.Money {
	if m == nil {
		return nil
	}
	money := toMoney(*m)
	return &money
}

func toStatus(v queries.StatusView) servers.Status {
	return servers.Status{
		Code:       v.Code,
		Label:      v.Label,
		BadgeClass: v.BadgeClass,
		Icon:       v.Icon,
	}
}

func toOrder(v queries.GetOrderQueryResponse) servers.Order {
	history := make([]servers.HistoryEntry, len(v.History))
	for i, h := range v.History {
		history[i] = servers.HistoryEntry{
			Status:    toStatus(h.Status),
			Label:     h.Label,
			ChangedAt: h.ChangedAt,
		}
	}

	next := make([]servers.Status, len(v.NextStatuses))
	for i, s := range v.NextStatuses {
		next[i] = toStatus(s)
	}

	var phone *string
	if v.Customer.Phone != "" {
		p := v.Customer.Phone
		phone = &p
	}

	return servers.Order{
		OrderNumber: v.Number,
		Status:      toStatus(v.Status),
		Customer: servers.Customer{
			Firstname: v.Customer.Firstname,
			Lastname:  v.Customer.Lastname,
			Email:     v.Customer.Email,
			Phone:     phone,
			Address:   v.Customer.Address,
		},
		MenuName:               v.MenuName,
		PricePerPerson:         toMoney(v.PricePerPerson),
		NumberOfPersons:        v.NumberOfPersons,
		DeliveryAt:             v.DeliveryAt,
		DistanceKm:             v.DeliveryDistanceKm,
		MenuSubtotal:           toMoney(v.MenuSubtotal),
		DeliveryCost:           toMoney(v.DeliveryCost),
		Discount:               toOptionalMoney(v.Discount),
		TotalPrice:             toMoney(v.TotalPrice),
		CreatedAt:              v.CreatedAt,
		UpdatedAt:              v.UpdatedAt,
		AcceptedAt:             v.AcceptedAt,
		CompletedAt:            v.CompletedAt,
		CancelledAt:            v.CancelledAt,
		HasMaterialLoan:        v.HasMaterialLoan,
		MaterialReturnDeadline: v.MaterialReturnDeadline,
		MaterialReturned:       v.MaterialReturned,
		CancellationReason:     v.CancellationReason,
		History:                history,
		NextStatuses:           next,
		IsCancellable:          v.IsCancellable,
		IsEditable:             v.IsEditable,
		CanReceiveReview:       v.CanReceiveReview,
	}
}
