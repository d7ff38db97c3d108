package http

import (
	"net/http"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

type RateHandler struct {
	catalogSvc service.CatalogService
}

func NewRateHandler(catalogSvc service.CatalogService) *RateHandler {
	return &RateHandler{catalogSvc: catalogSvc}
}

type taskRateRequest struct {
	TaskType         string `json:"task_type" validate:"required"`
	Category         string `json:"category" validate:"omitempty,oneof=CHAIRS TABLES TENTS DEFAULT"`
	RatePerUnitCents int64  `json:"rate_per_unit_cents" validate:"required,gt=0"`
	Unit             string `json:"unit"`
}

func (h *RateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	category := domain.ProductCategory(req.Category)
	if category == "" {
		category = domain.ProductCategoryDefault
	}
	rate, err := h.catalogSvc.CreateTaskRate(r.Context(), &domain.TaskRate{
		TaskType:         domain.TaskType(req.TaskType),
		Category:         category,
		RatePerUnitCents: req.RatePerUnitCents,
		Unit:             req.Unit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rate)
}

func (h *RateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req taskRateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rate, err := h.catalogSvc.UpdateTaskRate(r.Context(), &domain.TaskRate{
		ID:               mux.Vars(r)["id"],
		TaskType:         domain.TaskType(req.TaskType),
		Category:         domain.ProductCategory(req.Category),
		RatePerUnitCents: req.RatePerUnitCents,
		Unit:             req.Unit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.DeleteTaskRate(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := h.catalogSvc.ListTaskRates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	vehicleRates, err := h.catalogSvc.ListVehicleRates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"task_rates":    rates,
		"vehicle_rates": vehicleRates,
	})
}
