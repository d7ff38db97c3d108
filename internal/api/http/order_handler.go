package http

import (
	"net/http"
	"strconv"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/pricing"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	ClientID            string             `json:"client_id" validate:"required"`
	RentalStartDate     string             `json:"rental_start_date" validate:"required,datetime=2006-01-02"`
	RentalEndDate       string             `json:"rental_end_date" validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate  string             `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
	TotalAmountCents    int64              `json:"total_amount_cents" validate:"gte=0"`
	DiscountAmountCents int64              `json:"discount_amount_cents" validate:"gte=0"`
	Items               []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes               string             `json:"notes"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	order := &domain.Order{
		ClientID:            req.ClientID,
		RentalStartDate:     req.RentalStartDate,
		RentalEndDate:       req.RentalEndDate,
		ExpectedReturnDate:  req.ExpectedReturnDate,
		TotalAmountCents:    req.TotalAmountCents,
		DiscountAmountCents: req.DiscountAmountCents,
		Notes:               req.Notes,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	created, err := h.orderSvc.CreateOrder(r.Context(), order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderSvc.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type listOrdersResponse struct {
	Orders   []domain.Order `json:"orders"`
	Total    int32          `json:"total"`
	Page     int32          `json:"page"`
	PageSize int32          `json:"page_size"`
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	orders, total, err := h.orderSvc.ListOrders(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listOrdersResponse{Orders: orders, Total: total, Page: page, PageSize: pageSize})
}

// updateOrderRequest carries the editable fields only. The client reference,
// line items, and pricing totals are fixed at creation and by the lifecycle.
type updateOrderRequest struct {
	RentalStartDate     string `json:"rental_start_date" validate:"required,datetime=2006-01-02"`
	RentalEndDate       string `json:"rental_end_date" validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate  string `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
	AmountPaidCents     int64  `json:"amount_paid_cents" validate:"gte=0"`
	DiscountAmountCents int64  `json:"discount_amount_cents" validate:"gte=0"`
	Notes               string `json:"notes"`
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	order := &domain.Order{
		ID:                  mux.Vars(r)["id"],
		RentalStartDate:     req.RentalStartDate,
		RentalEndDate:       req.RentalEndDate,
		ExpectedReturnDate:  req.ExpectedReturnDate,
		AmountPaidCents:     req.AmountPaidCents,
		DiscountAmountCents: req.DiscountAmountCents,
		Notes:               req.Notes,
	}

	updated, err := h.orderSvc.UpdateOrder(r.Context(), order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type updateStatusRequest struct {
	Status           string `json:"status" validate:"required"`
	ActualReturnDate string `json:"actual_return_date" validate:"omitempty,datetime=2006-01-02"`
	OverrideDays     int    `json:"override_days" validate:"gte=0"`
}

type updateStatusResponse struct {
	Order               *domain.Order        `json:"order"`
	Adjustment          *pricing.Adjustment  `json:"adjustment,omitempty"`
	AdjustedAmountCents int64                `json:"adjusted_amount_cents"`
	DifferenceCents     int64                `json:"difference_cents"`
	Direction           string               `json:"direction"`
	ReturnStatus        pricing.ReturnStatus `json:"return_status,omitempty"`
	TaskError           string               `json:"task_error,omitempty"`
}

// UpdateStatus drives the order lifecycle. A failed automatic task recording
// does not fail the request; it is reported alongside the durable transition.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	next := domain.OrderStatus(req.Status)
	if !next.Valid() {
		writeError(w, domain.NewValidationError("status", "unknown status "+req.Status))
		return
	}

	result, err := h.orderSvc.UpdateStatus(r.Context(), mux.Vars(r)["id"], next, req.ActualReturnDate, req.OverrideDays)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := updateStatusResponse{Order: result.Order, Adjustment: result.Adjustment, ReturnStatus: result.ReturnStatus}
	if result.Adjustment != nil {
		resp.AdjustedAmountCents = result.Adjustment.AdjustedAmountCents
		resp.DifferenceCents = result.Adjustment.DifferenceCents
		resp.Direction = result.Adjustment.Direction()
	}
	if result.TaskErr != nil {
		resp.TaskError = result.TaskErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if val, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && val > 0 {
		page = int32(val)
	}
	if val, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && val > 0 && val <= 100 {
		pageSize = int32(val)
	}
	return page, pageSize
}
