package service

import (
	"context"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/pricing"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) UpdateWithStatusGuard(ctx context.Context, order *domain.Order, expected domain.OrderStatus) (bool, error) {
	args := m.Called(ctx, order, expected)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int32), args.Error(2)
}
func (m *MockOrderRepo) ListByClient(ctx context.Context, clientID string, page, pageSize int32) ([]domain.Order, int32, error) {
	args := m.Called(ctx, clientID, page, pageSize)
	return args.Get(0).([]domain.Order), args.Get(1).(int32), args.Error(2)
}
func (m *MockOrderRepo) RentedQuantity(ctx context.Context, productID string) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

// MockTaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.WorkerTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockTaskRepo) GetByID(ctx context.Context, id string) (*domain.WorkerTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerTask), args.Error(1)
}
func (m *MockTaskRepo) Update(ctx context.Context, task *domain.WorkerTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockTaskRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTaskRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.WorkerTask, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]domain.WorkerTask), args.Error(1)
}
func (m *MockTaskRepo) ListByWorkerBetween(ctx context.Context, workerID, startDate, endDate string) ([]domain.WorkerTask, error) {
	args := m.Called(ctx, workerID, startDate, endDate)
	return args.Get(0).([]domain.WorkerTask), args.Error(1)
}

// MockWorkerRepo
type MockWorkerRepo struct {
	mock.Mock
}

func (m *MockWorkerRepo) Create(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerRepo) Update(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerRepo) List(ctx context.Context, activeOnly bool) ([]domain.Worker, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Worker), args.Error(1)
}

// MockAttendanceRepo
type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}
func (m *MockAttendanceRepo) ListByWorkerBetween(ctx context.Context, workerID, startDate, endDate string) ([]domain.Attendance, error) {
	args := m.Called(ctx, workerID, startDate, endDate)
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Client), args.Get(1).(int32), args.Error(2)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Product), args.Get(1).(int32), args.Error(2)
}

// MockRateRepo
type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) Create(ctx context.Context, rate *domain.TaskRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRateRepo) Update(ctx context.Context, rate *domain.TaskRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRateRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRateRepo) List(ctx context.Context) ([]domain.TaskRate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TaskRate), args.Error(1)
}
func (m *MockRateRepo) ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleRate), args.Error(1)
}

// MockTaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, task *domain.WorkerTask) (*domain.WorkerTask, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerTask), args.Error(1)
}
func (m *MockTaskService) GetTask(ctx context.Context, id string) (*domain.WorkerTask, []pricing.WorkerShare, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.WorkerTask), args.Get(1).([]pricing.WorkerShare), args.Error(2)
}
func (m *MockTaskService) UpdateTask(ctx context.Context, task *domain.WorkerTask) (*domain.WorkerTask, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerTask), args.Error(1)
}
func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTaskService) ListOrderTasks(ctx context.Context, orderID string) ([]domain.WorkerTask, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]domain.WorkerTask), args.Error(1)
}
func (m *MockTaskService) SuggestAmount(ctx context.Context, orderID string, taskType domain.TaskType, vehicleType string) (int64, error) {
	args := m.Called(ctx, orderID, taskType, vehicleType)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTaskService) RecordForOrder(ctx context.Context, order *domain.Order, taskType domain.TaskType) (*domain.WorkerTask, error) {
	args := m.Called(ctx, order, taskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerTask), args.Error(1)
}

// MockSMSService
type MockSMSService struct {
	mock.Mock
}

func (m *MockSMSService) Notify(ctx context.Context, phone, body string) error {
	args := m.Called(ctx, phone, body)
	return args.Error(0)
}
func (m *MockSMSService) FlushOutbox(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

// MockInvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) SendInvoice(ctx context.Context, client *domain.Client, order *domain.Order, adj pricing.Adjustment) error {
	args := m.Called(ctx, client, order, adj)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockSMSOutboxRepo
type MockSMSOutboxRepo struct {
	mock.Mock
}

func (m *MockSMSOutboxRepo) Enqueue(ctx context.Context, msg *domain.SMSMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockSMSOutboxRepo) Update(ctx context.Context, msg *domain.SMSMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockSMSOutboxRepo) ListPending(ctx context.Context, limit int32) ([]domain.SMSMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.SMSMessage), args.Error(1)
}
