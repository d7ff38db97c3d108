package repository

import (
	"context"

	"rentops-backend/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	// UpdateWithStatusGuard persists the order only if its stored status still
	// equals expected. Returns false when a concurrent transition won; the
	// store is the single serialization point for double-submits.
	UpdateWithStatusGuard(ctx context.Context, order *domain.Order, expected domain.OrderStatus) (bool, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error)
	ListByClient(ctx context.Context, clientID string, page, pageSize int32) ([]domain.Order, int32, error)
	// RentedQuantity derives how many units of a product sit in active orders.
	// Rented stock is a query over line items, never a stored counter.
	RentedQuantity(ctx context.Context, productID string) (int, error)
}

type WorkerTaskRepository interface {
	Create(ctx context.Context, task *domain.WorkerTask) error
	GetByID(ctx context.Context, id string) (*domain.WorkerTask, error)
	Update(ctx context.Context, task *domain.WorkerTask) error
	Delete(ctx context.Context, id string) error
	ListByOrder(ctx context.Context, orderID string) ([]domain.WorkerTask, error)
	// ListByWorkerBetween returns tasks completed in [startDate, endDate]
	// (yyyy-mm-dd, inclusive) that list the worker, present or not.
	ListByWorkerBetween(ctx context.Context, workerID, startDate, endDate string) ([]domain.WorkerTask, error)
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	List(ctx context.Context, activeOnly bool) ([]domain.Worker, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	ListByWorkerBetween(ctx context.Context, workerID, startDate, endDate string) ([]domain.Attendance, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)
}

type TaskRateRepository interface {
	Create(ctx context.Context, rate *domain.TaskRate) error
	Update(ctx context.Context, rate *domain.TaskRate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.TaskRate, error)
	ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SMSOutboxRepository interface {
	Enqueue(ctx context.Context, msg *domain.SMSMessage) error
	Update(ctx context.Context, msg *domain.SMSMessage) error
	ListPending(ctx context.Context, limit int32) ([]domain.SMSMessage, error)
}
