package http

import (
	"net/http"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/pricing"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	taskSvc     service.TaskService
	earningsSvc service.EarningsService
}

func NewTaskHandler(taskSvc service.TaskService, earningsSvc service.EarningsService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc, earningsSvc: earningsSvc}
}

type taskWorkerRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	Present  bool   `json:"present"`
}

type taskRequest struct {
	OrderID         string              `json:"order_id" validate:"required"`
	TaskType        string              `json:"task_type" validate:"required"`
	TaskAmountCents int64               `json:"task_amount_cents" validate:"required,gt=0"`
	Notes           string              `json:"notes"`
	CompletedAt     *time.Time          `json:"completed_at"`
	Workers         []taskWorkerRequest `json:"workers" validate:"required,min=1,dive"`
}

func (r *taskRequest) toDomain(id string) *domain.WorkerTask {
	task := &domain.WorkerTask{
		ID:              id,
		OrderID:         r.OrderID,
		Type:            domain.TaskType(r.TaskType),
		TaskAmountCents: r.TaskAmountCents,
		Notes:           r.Notes,
	}
	if r.CompletedAt != nil {
		task.CompletedAt = *r.CompletedAt
	}
	for _, w := range r.Workers {
		task.Workers = append(task.Workers, domain.TaskWorker{WorkerID: w.WorkerID, Present: w.Present})
	}
	return task
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.taskSvc.CreateTask(r.Context(), req.toDomain(""))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type taskResponse struct {
	Task   *domain.WorkerTask    `json:"task"`
	Shares []pricing.WorkerShare `json:"shares"`
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, shares, err := h.taskSvc.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: task, Shares: shares})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.taskSvc.UpdateTask(r.Context(), req.toDomain(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskSvc.DeleteTask(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TaskHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		writeError(w, domain.NewValidationError("order_id", "required"))
		return
	}

	tasks, err := h.taskSvc.ListOrderTasks(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

type suggestAmountResponse struct {
	SuggestedAmountCents int64 `json:"suggested_amount_cents"`
}

func (h *TaskHandler) SuggestAmount(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	orderID := query.Get("order_id")
	taskType := domain.TaskType(query.Get("task_type"))
	if orderID == "" {
		writeError(w, domain.NewValidationError("order_id", "required"))
		return
	}
	if !taskType.Valid() {
		writeError(w, domain.NewValidationError("task_type", "unknown task type"))
		return
	}

	amount, err := h.taskSvc.SuggestAmount(r.Context(), orderID, taskType, query.Get("vehicle_type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestAmountResponse{SuggestedAmountCents: amount})
}

func (h *TaskHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	workerID := query.Get("worker_id")
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")
	if workerID == "" {
		writeError(w, domain.NewValidationError("worker_id", "required"))
		return
	}
	if startDate == "" || endDate == "" {
		writeError(w, domain.NewValidationError("date_range", "start_date and end_date are required"))
		return
	}

	summary, err := h.earningsSvc.WorkerEarnings(r.Context(), workerID, startDate, endDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
