package service

import (
	"context"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"

	"github.com/google/uuid"
)

// CatalogService covers the reference data behind orders and tasks: workers,
// clients, products, and the rate tables.
type CatalogService interface {
	CreateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	GetWorker(ctx context.Context, id string) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	ListWorkers(ctx context.Context, activeOnly bool) ([]domain.Worker, error)
	RecordAttendance(ctx context.Context, att *domain.Attendance) (*domain.Attendance, error)

	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	ListClients(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error)

	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)

	CreateTaskRate(ctx context.Context, rate *domain.TaskRate) (*domain.TaskRate, error)
	UpdateTaskRate(ctx context.Context, rate *domain.TaskRate) (*domain.TaskRate, error)
	DeleteTaskRate(ctx context.Context, id string) error
	ListTaskRates(ctx context.Context) ([]domain.TaskRate, error)
	ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error)
}

type catalogService struct {
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	clientRepo     repository.ClientRepository
	productRepo    repository.ProductRepository
	rateRepo       repository.TaskRateRepository
}

func NewCatalogService(
	workerRepo repository.WorkerRepository,
	attendanceRepo repository.AttendanceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	rateRepo repository.TaskRateRepository,
) CatalogService {
	return &catalogService{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		clientRepo:     clientRepo,
		productRepo:    productRepo,
		rateRepo:       rateRepo,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (s *catalogService) CreateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	if worker.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	worker.ID = uuid.NewString()
	worker.Active = true
	worker.CreatedOn = today()
	worker.UpdatedOn = worker.CreatedOn
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *catalogService) GetWorker(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateWorker(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	existing, err := s.workerRepo.GetByID(ctx, worker.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = worker.Name
	existing.Phone = worker.Phone
	existing.DailyRateCents = worker.DailyRateCents
	existing.Active = worker.Active
	existing.UpdatedOn = today()
	if err := s.workerRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) ListWorkers(ctx context.Context, activeOnly bool) ([]domain.Worker, error) {
	return s.workerRepo.List(ctx, activeOnly)
}

func (s *catalogService) RecordAttendance(ctx context.Context, att *domain.Attendance) (*domain.Attendance, error) {
	if att.Hours <= 0 {
		return nil, domain.NewValidationError("hours", "must be positive")
	}
	if _, err := s.workerRepo.GetByID(ctx, att.WorkerID); err != nil {
		return nil, err
	}
	att.ID = uuid.NewString()
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *catalogService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	client.ID = uuid.NewString()
	client.CreatedOn = today()
	client.UpdatedOn = client.CreatedOn
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *catalogService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	existing, err := s.clientRepo.GetByID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = client.Name
	existing.Phone = client.Phone
	existing.Email = client.Email
	existing.Address = client.Address
	existing.Notes = client.Notes
	existing.UpdatedOn = today()
	if err := s.clientRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) ListClients(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	return s.clientRepo.List(ctx, page, pageSize)
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if product.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}
	if product.Category == "" {
		product.Category = domain.ProductCategoryDefault
	}
	product.ID = uuid.NewString()
	product.CreatedOn = today()
	product.UpdatedOn = product.CreatedOn
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = product.Name
	existing.Category = product.Category
	existing.Quantity = product.Quantity
	existing.UnitPriceCents = product.UnitPriceCents
	existing.UpdatedOn = today()
	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) ListProducts(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	return s.productRepo.List(ctx, page, pageSize)
}

func (s *catalogService) CreateTaskRate(ctx context.Context, rate *domain.TaskRate) (*domain.TaskRate, error) {
	if !rate.TaskType.Valid() {
		return nil, domain.NewValidationError("task_type", "unknown task type")
	}
	if rate.RatePerUnitCents <= 0 {
		return nil, domain.NewValidationError("rate_per_unit_cents", "must be positive")
	}
	rate.ID = uuid.NewString()
	rate.CreatedOn = today()
	rate.UpdatedOn = rate.CreatedOn
	if err := s.rateRepo.Create(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

func (s *catalogService) UpdateTaskRate(ctx context.Context, rate *domain.TaskRate) (*domain.TaskRate, error) {
	if rate.RatePerUnitCents <= 0 {
		return nil, domain.NewValidationError("rate_per_unit_cents", "must be positive")
	}
	rate.UpdatedOn = today()
	if err := s.rateRepo.Update(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

func (s *catalogService) DeleteTaskRate(ctx context.Context, id string) error {
	return s.rateRepo.Delete(ctx, id)
}

func (s *catalogService) ListTaskRates(ctx context.Context) ([]domain.TaskRate, error) {
	return s.rateRepo.List(ctx)
}

func (s *catalogService) ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error) {
	return s.rateRepo.ListVehicleRates(ctx)
}
