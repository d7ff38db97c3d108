package http

import (
	"net/http"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

type WorkerHandler struct {
	catalogSvc service.CatalogService
}

func NewWorkerHandler(catalogSvc service.CatalogService) *WorkerHandler {
	return &WorkerHandler{catalogSvc: catalogSvc}
}

type workerRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone"`
	DailyRateCents int64  `json:"daily_rate_cents" validate:"gte=0"`
	Active         *bool  `json:"active"`
}

func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req workerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	worker, err := h.catalogSvc.CreateWorker(r.Context(), &domain.Worker{
		Name:           req.Name,
		Phone:          req.Phone,
		DailyRateCents: req.DailyRateCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, worker)
}

func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	worker, err := h.catalogSvc.GetWorker(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, worker)
}

func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req workerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	worker := &domain.Worker{
		ID:             mux.Vars(r)["id"],
		Name:           req.Name,
		Phone:          req.Phone,
		DailyRateCents: req.DailyRateCents,
		Active:         true,
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}

	updated, err := h.catalogSvc.UpdateWorker(r.Context(), worker)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	workers, err := h.catalogSvc.ListWorkers(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workers": workers})
}

type attendanceRequest struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours float64 `json:"hours" validate:"required,gt=0"`
	Notes string  `json:"notes"`
}

func (h *WorkerHandler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	att, err := h.catalogSvc.RecordAttendance(r.Context(), &domain.Attendance{
		WorkerID: mux.Vars(r)["id"],
		Date:     req.Date,
		Hours:    req.Hours,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, att)
}
