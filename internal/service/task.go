package service

import (
	"context"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/pricing"
	"rentops-backend/internal/repository"

	"github.com/google/uuid"
)

type taskService struct {
	taskRepo   repository.WorkerTaskRepository
	orderRepo  repository.OrderRepository
	workerRepo repository.WorkerRepository
	rateRepo   repository.TaskRateRepository
}

func NewTaskService(
	taskRepo repository.WorkerTaskRepository,
	orderRepo repository.OrderRepository,
	workerRepo repository.WorkerRepository,
	rateRepo repository.TaskRateRepository,
) TaskService {
	return &taskService{
		taskRepo:   taskRepo,
		orderRepo:  orderRepo,
		workerRepo: workerRepo,
		rateRepo:   rateRepo,
	}
}

func (s *taskService) validate(task *domain.WorkerTask) error {
	if !task.Type.Valid() {
		return domain.NewValidationError("task_type", "unknown task type")
	}
	if task.TaskAmountCents <= 0 {
		return domain.NewValidationError("task_amount_cents", "must be positive")
	}
	if task.PresentCount() == 0 {
		return domain.NewValidationError("workers", "at least one worker must be present")
	}
	return nil
}

func (s *taskService) CreateTask(ctx context.Context, task *domain.WorkerTask) (*domain.WorkerTask, error) {
	logger.EnterMethod("taskService.CreateTask", "orderID", task.OrderID, "type", task.Type)

	if err := s.validate(task); err != nil {
		logger.ExitMethodWithError("taskService.CreateTask", err, "orderID", task.OrderID)
		return nil, err
	}
	if _, err := s.orderRepo.GetByID(ctx, task.OrderID); err != nil {
		return nil, err
	}
	for _, w := range task.Workers {
		if _, err := s.workerRepo.GetByID(ctx, w.WorkerID); err != nil {
			return nil, err
		}
	}

	task.ID = uuid.NewString()
	if task.CompletedAt.IsZero() {
		task.CompletedAt = time.Now()
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ExitMethodWithError("taskService.CreateTask", err, "orderID", task.OrderID)
		return nil, err
	}

	logger.ExitMethod("taskService.CreateTask", "taskID", task.ID)
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*domain.WorkerTask, []pricing.WorkerShare, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return task, pricing.SplitShares(task.TaskAmountCents, task.Workers), nil
}

func (s *taskService) UpdateTask(ctx context.Context, task *domain.WorkerTask) (*domain.WorkerTask, error) {
	if err := s.validate(task); err != nil {
		return nil, err
	}
	if _, err := s.taskRepo.GetByID(ctx, task.ID); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *taskService) ListOrderTasks(ctx context.Context, orderID string) ([]domain.WorkerTask, error) {
	return s.taskRepo.ListByOrder(ctx, orderID)
}

// calculator assembles the rate tables fresh on each call so rate edits take
// effect without a restart.
func (s *taskService) calculator(ctx context.Context) (*pricing.Calculator, error) {
	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vehicleRates, err := s.rateRepo.ListVehicleRates(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculator(pricing.NewRateTable(rates), pricing.NewVehicleRates(vehicleRates)), nil
}

func (s *taskService) SuggestAmount(ctx context.Context, orderID string, taskType domain.TaskType, vehicleType string) (int64, error) {
	if !taskType.Valid() {
		return 0, domain.NewValidationError("task_type", "unknown task type")
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	calc, err := s.calculator(ctx)
	if err != nil {
		return 0, err
	}
	return calc.SuggestAmount(orderItems(order), taskType, vehicleType), nil
}

func (s *taskService) RecordForOrder(ctx context.Context, order *domain.Order, taskType domain.TaskType) (*domain.WorkerTask, error) {
	logger.EnterMethod("taskService.RecordForOrder", "orderID", order.ID, "type", taskType)

	calc, err := s.calculator(ctx)
	if err != nil {
		return nil, err
	}
	amount := calc.SuggestAmount(orderItems(order), taskType, "")
	if amount <= 0 {
		// No configured rates for this order's items. The suggestion is
		// advisory and must not block the workflow step, so record a
		// placeholder amount of one unit for later admin correction.
		amount = 100
	}

	workers, err := s.workerRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, domain.NewValidationError("workers", "no active workers to assign")
	}

	task := &domain.WorkerTask{
		OrderID:         order.ID,
		Type:            taskType,
		TaskAmountCents: amount,
		CompletedAt:     time.Now(),
	}
	for _, w := range workers {
		task.Workers = append(task.Workers, domain.TaskWorker{WorkerID: w.ID, Present: true})
	}

	return s.CreateTask(ctx, task)
}

func orderItems(order *domain.Order) []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, pricing.LineItem{ProductName: it.ProductName, Quantity: it.Quantity})
	}
	return items
}
