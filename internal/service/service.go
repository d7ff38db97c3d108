package service

import (
	"context"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/pricing"
)

// StatusUpdateResult carries everything a caller needs to report a status
// transition: the persisted order, the pricing adjustment applied at
// completion or cancellation, and any non-fatal worker-task recording error.
type StatusUpdateResult struct {
	Order        *domain.Order        `json:"order"`
	Adjustment   *pricing.Adjustment  `json:"adjustment,omitempty"`
	ReturnStatus pricing.ReturnStatus `json:"return_status,omitempty"`
	// TaskErr reports a failed secondary task recording. The status change
	// itself is durable; callers retry task entry without re-deriving pricing.
	TaskErr error `json:"-"`
}

type OrderService interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListOrders(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error)
	// UpdateStatus drives the lifecycle state machine. Completion requires an
	// actual return date; overrideDays, when positive, replaces the
	// date-derived chargeable duration.
	UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus, actualReturnDate string, overrideDays int) (*StatusUpdateResult, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, task *domain.WorkerTask) (*domain.WorkerTask, error)
	GetTask(ctx context.Context, id string) (*domain.WorkerTask, []pricing.WorkerShare, error)
	UpdateTask(ctx context.Context, task *domain.WorkerTask) (*domain.WorkerTask, error)
	DeleteTask(ctx context.Context, id string) error
	ListOrderTasks(ctx context.Context, orderID string) ([]domain.WorkerTask, error)
	SuggestAmount(ctx context.Context, orderID string, taskType domain.TaskType, vehicleType string) (int64, error)
	// RecordForOrder auto-creates a workflow task (issuing, receiving) with a
	// suggested amount and the active crew marked present.
	RecordForOrder(ctx context.Context, order *domain.Order, taskType domain.TaskType) (*domain.WorkerTask, error)
}

type EarningsService interface {
	WorkerEarnings(ctx context.Context, workerID, startDate, endDate string) (*domain.EarningsSummary, error)
}

type InventoryService interface {
	Availability(ctx context.Context, productID string) (*domain.ProductAvailability, error)
}

// TokenPair carries the short-lived access token and the long-lived refresh
// token issued at login.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh exchanges a valid refresh token for a new access token. The
	// user must still exist and be active.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Register(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error)
}

type SMSService interface {
	// Notify sends immediately with bounded retry and parks the message in
	// the outbox when the provider stays down.
	Notify(ctx context.Context, phone, body string) error
	FlushOutbox(ctx context.Context) (sent, failed int, err error)
}

type InvoiceService interface {
	SendInvoice(ctx context.Context, client *domain.Client, order *domain.Order, adj pricing.Adjustment) error
}
