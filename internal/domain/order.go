package domain

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// orderTransitions holds the allowed forward transitions. Cancellation is
// reachable from every non-terminal state; COMPLETED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from its current status to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                 string  `json:"id"`
	ClientID           string  `json:"client_id"`
	RentalStartDate    string  `json:"rental_start_date"` // yyyy-mm-dd
	RentalEndDate      string  `json:"rental_end_date"`
	ExpectedReturnDate string  `json:"expected_return_date"`
	ActualReturnDate   *string `json:"actual_return_date,omitempty"`
	// TotalAmountCents is the quoted charge at order creation, adjusted once
	// on completion or cancellation. Line item prices are immutable snapshots.
	TotalAmountCents      int64       `json:"total_amount_cents"`
	AmountPaidCents       int64       `json:"amount_paid_cents"`
	DiscountAmountCents   int64       `json:"discount_amount_cents"`
	ChargeableDays        int         `json:"chargeable_days"`
	DefaultChargeableDays int         `json:"default_chargeable_days"`
	Status                OrderStatus `json:"status"`
	Items                 []OrderItem `json:"items"`
	Notes                 string      `json:"notes"`
	CreatedOn             string      `json:"created_on"`
	UpdatedOn             string      `json:"updated_on"`
}

type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	// UnitPriceCents is captured from the product at order creation and never
	// recalculated from the live product price.
	UnitPriceCents int64 `json:"unit_price_cents"`
}
