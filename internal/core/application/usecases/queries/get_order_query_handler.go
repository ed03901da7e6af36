package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its history with plain SQL and
// decorates statuses with the labels of the injected labeler.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	labels ports.StatusLabeler
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB, labels ports.StatusLabeler) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, labels: labels}
}

type orderRow struct {
	ID                     int64
	Number                 string
	CustomerFirstname      string
	CustomerLastname       string
	CustomerEmail          string
	CustomerPhone          string
	CustomerAddress        string
	MenuName               string
	PricePerPerson         int64
	NumberOfPersons        int
	DeliveryAt             time.Time
	DeliveryDistanceKm     *int
	MenuSubtotal           int64
	DeliveryCost           int64
	Discount               *int64
	TotalPrice             int64
	Status                 string
	CreatedAt              time.Time
	UpdatedAt              time.Time
	AcceptedAt             *time.Time
	CompletedAt            *time.Time
	CancelledAt            *time.Time
	HasMaterialLoan        bool
	MaterialReturnDeadline *time.Time
	MaterialReturned       bool
	CancellationReason     *string
}

// Handle executes the query. Returns an error wrapping errs.ErrObjectNotFound
// when no order has the requested number.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	result := db.Raw(`
		SELECT
			id, number,
			customer_firstname, customer_lastname, customer_email, customer_phone, customer_address,
			menu_name, price_per_person, number_of_persons,
			delivery_at, delivery_distance_km,
			menu_subtotal, delivery_cost, discount, total_price,
			status, created_at, updated_at, accepted_at, completed_at, cancelled_at,
			has_material_loan, material_return_deadline, material_returned, cancellation_reason
		FROM orders
		WHERE number = ?
	`, query.OrderNumber().String()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber().String())
	}

	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	history, err := h.history(ctx, row.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		Number: row.Number,
		Status: h.view(status),
		Customer: CustomerView{
			Firstname: row.CustomerFirstname,
			Lastname:  row.CustomerLastname,
			Email:     row.CustomerEmail,
			Phone:     row.CustomerPhone,
			Address:   row.CustomerAddress,
		},
		MenuName:               row.MenuName,
		PricePerPerson:         kernel.Money(row.PricePerPerson),
		NumberOfPersons:        row.NumberOfPersons,
		DeliveryAt:             row.DeliveryAt,
		DeliveryDistanceKm:     row.DeliveryDistanceKm,
		MenuSubtotal:           kernel.Money(row.MenuSubtotal),
		DeliveryCost:           kernel.Money(row.DeliveryCost),
		TotalPrice:             kernel.Money(row.TotalPrice),
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
		AcceptedAt:             row.AcceptedAt,
		CompletedAt:            row.CompletedAt,
		CancelledAt:            row.CancelledAt,
		HasMaterialLoan:        row.HasMaterialLoan,
		MaterialReturnDeadline: row.MaterialReturnDeadline,
		MaterialReturned:       row.MaterialReturned,
		CancellationReason:     row.CancellationReason,
		History:                history,
		IsCancellable:          status.IsCancellable(),
		IsEditable:             status.IsEditable(),
		CanReceiveReview:       status.CanReceiveReview(false),
	}
	if row.Discount != nil {
		response.Discount = kernel.OptionalMoney(kernel.Money(*row.Discount))
	}

	next := status.NextStatuses()
	response.NextStatuses = make([]StatusView, 0, len(next))
	for _, s := range next {
		response.NextStatuses = append(response.NextStatuses, h.view(s))
	}

	return response, nil
}

func (h GetOrderQueryHandler) history(ctx context.Context, orderID int64) ([]HistoryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, label, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryView, 0)
	for rows.Next() {
		var code, label string
		var changedAt time.Time

		if err = rows.Scan(&code, &label, &changedAt); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(code)
		if statusErr != nil {
			return nil, statusErr
		}

		history = append(history, HistoryView{
			Status:    h.view(status),
			Label:     label,
			ChangedAt: changedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

func (h GetOrderQueryHandler) view(s order.Status) StatusView {
	p := h.labels.Presentation(s)
	return StatusView{
		Code:       s.String(),
		Label:      p.Label,
		BadgeClass: p.BadgeClass,
		Icon:       p.Icon,
	}
}
