package service

import (
	"context"
	"testing"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderFixture(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:                    "ord-1",
		ClientID:              "cli-1",
		RentalStartDate:       "2026-07-01",
		RentalEndDate:         "2026-07-05",
		ExpectedReturnDate:    "2026-07-05",
		TotalAmountCents:      1000000,
		ChargeableDays:        5,
		DefaultChargeableDays: 5,
		Status:                status,
		Items: []domain.OrderItem{
			{ID: "item-1", OrderID: "ord-1", ProductID: "prod-1", ProductName: "Folding chair", Quantity: 100, UnitPriceCents: 10000},
		},
	}
}

func clientFixture() *domain.Client {
	return &domain.Client{ID: "cli-1", Name: "Acme Events", Phone: "+15550100", Email: "billing@acme.example"}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		clientRepo := new(MockClientRepo)
		svc := NewOrderService(orderRepo, clientRepo, new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
		orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

		order := newOrderFixture("")
		order.ID = ""
		order.Status = ""
		order.ChargeableDays = 0
		order.DefaultChargeableDays = 0

		created, err := svc.CreateOrder(ctx, order)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.OrderStatusPending, created.Status)
		assert.Equal(t, 5, created.DefaultChargeableDays)
		assert.Equal(t, 5, created.ChargeableDays)
	})

	t.Run("UnknownClient", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		clientRepo := new(MockClientRepo)
		svc := NewOrderService(orderRepo, clientRepo, new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		clientRepo.On("GetByID", ctx, "cli-1").Return(nil, domain.NewNotFoundError("client", "cli-1"))

		_, err := svc.CreateOrder(ctx, newOrderFixture(""))
		var nfErr *domain.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})

	t.Run("NoItems", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		clientRepo := new(MockClientRepo)
		svc := NewOrderService(orderRepo, clientRepo, new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)

		order := newOrderFixture("")
		order.Items = nil
		_, err := svc.CreateOrder(ctx, order)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestOrderService_UpdateStatus_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingToConfirmed", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		clientRepo := new(MockClientRepo)
		smsSvc := new(MockSMSService)
		svc := NewOrderService(orderRepo, clientRepo, new(MockTaskService), smsSvc, new(MockInvoiceService), 1)

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusPending), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusPending).Return(true, nil)
		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
		smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)

		result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusConfirmed, "", 0)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusConfirmed, result.Order.Status)
		assert.Nil(t, result.Adjustment)
		smsSvc.AssertCalled(t, "Notify", ctx, "+15550100", mock.AnythingOfType("string"))
	})

	t.Run("IllegalJump", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo, new(MockClientRepo), new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusPending), nil)

		_, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "2026-07-04", 0)
		var sErr *domain.StateError
		assert.ErrorAs(t, err, &sErr)
		assert.Equal(t, domain.OrderStatusPending, sErr.From)
		assert.Equal(t, domain.OrderStatusCompleted, sErr.To)
	})

	t.Run("TerminalStateRejects", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo, new(MockClientRepo), new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusCompleted), nil)

		_, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCancelled, "", 0)
		var sErr *domain.StateError
		assert.ErrorAs(t, err, &sErr)
	})

	t.Run("ConcurrentTransitionLoses", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo, new(MockClientRepo), new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusPending), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusPending).Return(false, nil)

		_, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusConfirmed, "", 0)
		var sErr *domain.StateError
		assert.ErrorAs(t, err, &sErr)
	})
}

func TestOrderService_UpdateStatus_Completion(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockOrderRepo, *MockClientRepo, *MockTaskService, *MockSMSService, *MockInvoiceService, OrderService) {
		orderRepo := new(MockOrderRepo)
		clientRepo := new(MockClientRepo)
		taskSvc := new(MockTaskService)
		smsSvc := new(MockSMSService)
		invoiceSvc := new(MockInvoiceService)
		svc := NewOrderService(orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, 1)
		return orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, svc
	}

	t.Run("EarlyReturnRefund", func(t *testing.T) {
		orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, svc := setup()

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusInProgress), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusInProgress).Return(true, nil)
		taskSvc.On("RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeReceiving).
			Return(&domain.WorkerTask{ID: "task-1"}, nil)
		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
		smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)
		invoiceSvc.On("SendInvoice", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		// Rented for 5 days at 10000.00, returned after 3: billed 6000.00.
		result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "2026-07-04", 0)
		assert.NoError(t, err)
		assert.NotNil(t, result.Adjustment)
		assert.Equal(t, int64(600000), result.Adjustment.AdjustedAmountCents)
		assert.Equal(t, int64(-400000), result.Adjustment.DifferenceCents)
		assert.Equal(t, "refund", result.Adjustment.Direction())
		assert.Equal(t, 3, result.Adjustment.ChargeableDays)
		assert.Equal(t, int64(600000), result.Order.TotalAmountCents)
		assert.Equal(t, pricing.ReturnStatusEarly, result.ReturnStatus)
		assert.Nil(t, result.TaskErr)
	})

	t.Run("LateReturnExtraCharge", func(t *testing.T) {
		orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, svc := setup()

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusInProgress), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusInProgress).Return(true, nil)
		taskSvc.On("RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeReceiving).
			Return(&domain.WorkerTask{ID: "task-1"}, nil)
		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
		smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)
		invoiceSvc.On("SendInvoice", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		// Returned after 8 days of a 5-day rental: three extra days at 150%.
		result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "2026-07-09", 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1900000), result.Adjustment.AdjustedAmountCents)
		assert.Equal(t, int64(900000), result.Adjustment.DifferenceCents)
		assert.Equal(t, "extra_charge", result.Adjustment.Direction())
	})

	t.Run("OverrideDaysWin", func(t *testing.T) {
		orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, svc := setup()

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusInProgress), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusInProgress).Return(true, nil)
		taskSvc.On("RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeReceiving).
			Return(&domain.WorkerTask{ID: "task-1"}, nil)
		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
		smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)
		invoiceSvc.On("SendInvoice", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		// Dates say 8 days, operator says bill 5: operator wins.
		result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "2026-07-09", 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000000), result.Adjustment.AdjustedAmountCents)
		assert.Equal(t, int64(0), result.Adjustment.DifferenceCents)
	})

	t.Run("MissingReturnDate", func(t *testing.T) {
		orderRepo, _, _, _, _, svc := setup()

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusInProgress), nil)

		_, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "", 0)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		orderRepo.AssertNotCalled(t, "UpdateWithStatusGuard", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TaskFailureIsNonFatal", func(t *testing.T) {
		orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, svc := setup()

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusInProgress), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusInProgress).Return(true, nil)
		taskSvc.On("RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeReceiving).
			Return(nil, assert.AnError)
		clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
		smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)
		invoiceSvc.On("SendInvoice", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "2026-07-04", 0)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, result.Order.Status)
		assert.Error(t, result.TaskErr)
	})

	t.Run("InProgressRecordsIssuingTask", func(t *testing.T) {
		orderRepo, _, taskSvc, _, _, svc := setup()

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusConfirmed), nil)
		orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusConfirmed).Return(true, nil)
		taskSvc.On("RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeIssuing).
			Return(&domain.WorkerTask{ID: "task-1"}, nil)

		result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusInProgress, "", 0)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusInProgress, result.Order.Status)
		taskSvc.AssertCalled(t, "RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeIssuing)
	})
}

func TestOrderService_UpdateStatus_Cancellation(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)
	clientRepo := new(MockClientRepo)
	smsSvc := new(MockSMSService)
	svc := NewOrderService(orderRepo, clientRepo, new(MockTaskService), smsSvc, new(MockInvoiceService), 1)

	order := newOrderFixture(domain.OrderStatusPending)
	order.TotalAmountCents = 800000
	orderRepo.On("GetByID", ctx, "ord-1").Return(order, nil)
	orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusPending).Return(true, nil)
	clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
	smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)

	// 8000.00 order cancelled: 10% fee retained, 7200.00 refund.
	result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCancelled, "", 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(80000), result.Adjustment.AdjustedAmountCents)
	assert.Equal(t, int64(-720000), result.Adjustment.DifferenceCents)
	assert.Equal(t, 0, result.Adjustment.ChargeableDays)
	assert.Equal(t, domain.OrderStatusCancelled, result.Order.Status)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("PreservesClientReference", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo, new(MockClientRepo), new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusPending), nil)
		orderRepo.On("Update", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

		// Edits arrive without a client id, the way the update endpoint
		// builds them. The stored reference must survive.
		edit := &domain.Order{
			ID:              "ord-1",
			RentalStartDate: "2026-07-02",
			RentalEndDate:   "2026-07-06",
			Notes:           "delivery gate B",
		}
		updated, err := svc.UpdateOrder(ctx, edit)
		assert.NoError(t, err)
		assert.Equal(t, "cli-1", updated.ClientID)
		assert.Equal(t, "2026-07-02", updated.RentalStartDate)
		assert.Equal(t, "delivery gate B", updated.Notes)
	})

	t.Run("PreservesPricingFields", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo, new(MockClientRepo), new(MockTaskService), new(MockSMSService), new(MockInvoiceService), 1)

		orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusPending), nil)
		orderRepo.On("Update", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

		edit := &domain.Order{ID: "ord-1", RentalStartDate: "2026-07-01", RentalEndDate: "2026-07-05"}
		updated, err := svc.UpdateOrder(ctx, edit)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000000), updated.TotalAmountCents)
		assert.Equal(t, domain.OrderStatusPending, updated.Status)
	})
}

func TestOrderService_UpdateStatus_GraceWindow(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepo)
	clientRepo := new(MockClientRepo)
	taskSvc := new(MockTaskService)
	smsSvc := new(MockSMSService)
	invoiceSvc := new(MockInvoiceService)
	svc := NewOrderService(orderRepo, clientRepo, taskSvc, smsSvc, invoiceSvc, 2)

	orderRepo.On("GetByID", ctx, "ord-1").Return(newOrderFixture(domain.OrderStatusInProgress), nil)
	orderRepo.On("UpdateWithStatusGuard", ctx, mock.AnythingOfType("*domain.Order"), domain.OrderStatusInProgress).Return(true, nil)
	taskSvc.On("RecordForOrder", ctx, mock.AnythingOfType("*domain.Order"), domain.TaskTypeReceiving).
		Return(&domain.WorkerTask{ID: "task-1"}, nil)
	clientRepo.On("GetByID", ctx, "cli-1").Return(clientFixture(), nil)
	smsSvc.On("Notify", ctx, "+15550100", mock.AnythingOfType("string")).Return(nil)
	invoiceSvc.On("SendInvoice", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Two days past the expected return, but inside a two-day grace window.
	result, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderStatusCompleted, "2026-07-07", 0)
	assert.NoError(t, err)
	assert.Equal(t, pricing.ReturnStatusGracePeriod, result.ReturnStatus)
}
