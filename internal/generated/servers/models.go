package servers

import "time"

// Defines values for StatusChangeStatus.
const (
	StatusChangeStatusValidated             StatusChangeStatus = "validated"
	StatusChangeStatusPreparing             StatusChangeStatus = "preparing"
	StatusChangeStatusReady                 StatusChangeStatus = "ready"
	StatusChangeStatusDelivering            StatusChangeStatus = "delivering"
	StatusChangeStatusDelivered             StatusChangeStatus = "delivered"
	StatusChangeStatusWaitingMaterialReturn StatusChangeStatus = "waiting_material_return"
	StatusChangeStatusCompleted             StatusChangeStatus = "completed"
	StatusChangeStatusCancelled             StatusChangeStatus = "cancelled"
)

// Defines values for DeliveryWindowVerdictReason.
const (
	DeliveryWindowVerdictReasonTooSoon DeliveryWindowVerdictReason = "too_soon"
	DeliveryWindowVerdictReasonClosed  DeliveryWindowVerdictReason = "closed"
)

// Error defines model for Error.
type Error struct {
	Code    int32   `json:"code"`
	Message string  `json:"message"`
	Reason  *string `json:"reason,omitempty"`
}

// Money defines model for Money.
type Money struct {
	Amount string `json:"amount"`
	Cents  int64  `json:"cents"`
}

// Customer defines model for Customer.
type Customer struct {
	Address   string  `json:"address"`
	Email     string  `json:"email"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Phone     *string `json:"phone,omitempty"`
}

// Menu defines model for Menu.
type Menu struct {
	MinPersons          int    `json:"minPersons"`
	Name                string `json:"name"`
	PricePerPersonCents int64  `json:"pricePerPersonCents"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	City            string    `json:"city"`
	Customer        Customer  `json:"customer"`
	DeliveryAt      time.Time `json:"deliveryAt"`
	DistanceKm      *int      `json:"distanceKm,omitempty"`
	HasMaterialLoan *bool     `json:"hasMaterialLoan,omitempty"`
	Menu            Menu      `json:"menu"`
	NumberOfPersons int       `json:"numberOfPersons"`
}

// CreatedOrder defines model for CreatedOrder.
type CreatedOrder struct {
	OrderNumber string `json:"orderNumber"`
}

// Status defines model for Status.
type Status struct {
	BadgeClass string `json:"badgeClass"`
	Code       string `json:"code"`
	Icon       string `json:"icon"`
	Label      string `json:"label"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ChangedAt time.Time `json:"changedAt"`
	Label     string    `json:"label"`
	Status    Status    `json:"status"`
}

// Order defines model for Order.
type Order struct {
	AcceptedAt             *time.Time     `json:"acceptedAt,omitempty"`
	CanReceiveReview       bool           `json:"canReceiveReview"`
	CancellationReason     *string        `json:"cancellationReason,omitempty"`
	CancelledAt            *time.Time     `json:"cancelledAt,omitempty"`
	CompletedAt            *time.Time     `json:"completedAt,omitempty"`
	CreatedAt              time.Time      `json:"createdAt"`
	Customer               Customer       `json:"customer"`
	DeliveryAt             time.Time      `json:"deliveryAt"`
	DeliveryCost           Money          `json:"deliveryCost"`
	Discount               *Money         `json:"discount,omitempty"`
	DistanceKm             *int           `json:"distanceKm,omitempty"`
	HasMaterialLoan        bool           `json:"hasMaterialLoan"`
	History                []HistoryEntry `json:"history"`
	IsCancellable          bool           `json:"isCancellable"`
	IsEditable             bool           `json:"isEditable"`
	MaterialReturnDeadline *time.Time     `json:"materialReturnDeadline,omitempty"`
	MaterialReturned       bool           `json:"materialReturned"`
	MenuName               string         `json:"menuName"`
	MenuSubtotal           Money          `json:"menuSubtotal"`
	NextStatuses           []Status       `json:"nextStatuses"`
	NumberOfPersons        int            `json:"numberOfPersons"`
	OrderNumber            string         `json:"orderNumber"`
	PricePerPerson         Money          `json:"pricePerPerson"`
	Status                 Status         `json:"status"`
	TotalPrice             Money          `json:"totalPrice"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

// StatusChangeStatus defines model for StatusChange.Status.
type StatusChangeStatus string

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Reason *string            `json:"reason,omitempty"`
	Status StatusChangeStatus `json:"status"`
}

// Cancellation defines model for Cancellation.
type Cancellation struct {
	Reason *string `json:"reason,omitempty"`
}

// QuoteRequest defines model for QuoteRequest.
type QuoteRequest struct {
	City                string `json:"city"`
	DistanceKm          *int   `json:"distanceKm,omitempty"`
	MenuMinPersons      int    `json:"menuMinPersons"`
	NumberOfPersons     int    `json:"numberOfPersons"`
	PricePerPersonCents int64  `json:"pricePerPersonCents"`
}

// Quote defines model for Quote.
type Quote struct {
	DeliveryCost Money  `json:"deliveryCost"`
	Discount     *Money `json:"discount,omitempty"`
	IsLocalZone  bool   `json:"isLocalZone"`
	MenuSubtotal Money  `json:"menuSubtotal"`
	TotalPrice   Money  `json:"totalPrice"`
}

// DeliveryWindowRequest defines model for DeliveryWindowRequest.
type DeliveryWindowRequest struct {
	DeliveryAt time.Time `json:"deliveryAt"`
}

// DeliveryWindowVerdictReason defines model for DeliveryWindowVerdict.Reason.
type DeliveryWindowVerdictReason string

// DeliveryWindowVerdict defines model for DeliveryWindowVerdict.
type DeliveryWindowVerdict struct {
	Detail *string                      `json:"detail,omitempty"`
	Reason *DeliveryWindowVerdictReason `json:"reason,omitempty"`
	Valid  bool                         `json:"valid"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChange

// CancelOrderJSONRequestBody defines body for CancelOrder for application/json ContentType.
type CancelOrderJSONRequestBody = Cancellation

// QuotePriceJSONRequestBody defines body for QuotePrice for application/json ContentType.
type QuotePriceJSONRequestBody = QuoteRequest

// CheckDeliveryWindowJSONRequestBody defines body for CheckDeliveryWindow for application/json ContentType.
type CheckDeliveryWindowJSONRequestBody = DeliveryWindowRequest
