package postgres

import (
	"database/sql"

	"rentops-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrderRepository
	repository.WorkerTaskRepository
	repository.WorkerRepository
	repository.AttendanceRepository
	repository.ClientRepository
	repository.ProductRepository
	repository.TaskRateRepository
	repository.UserRepository
	repository.SMSOutboxRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		OrderRepository:      NewOrderRepository(db),
		WorkerTaskRepository: NewWorkerTaskRepository(db),
		WorkerRepository:     NewWorkerRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		ClientRepository:     NewClientRepository(db),
		ProductRepository:    NewProductRepository(db),
		TaskRateRepository:   NewTaskRateRepository(db),
		UserRepository:       NewUserRepository(db),
		SMSOutboxRepository:  NewSMSOutboxRepository(db),
	}
}
