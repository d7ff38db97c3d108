package service

import (
	"context"
	"fmt"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/pricing"
	"rentops-backend/internal/repository"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
	taskSvc    TaskService
	smsSvc     SMSService
	invoiceSvc InvoiceService
	graceDays  int
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	taskSvc TaskService,
	smsSvc SMSService,
	invoiceSvc InvoiceService,
	graceDays int,
) OrderService {
	if graceDays < 0 {
		graceDays = 0
	}
	return &orderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		taskSvc:    taskSvc,
		smsSvc:     smsSvc,
		invoiceSvc: invoiceSvc,
		graceDays:  graceDays,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	logger.EnterMethod("orderService.CreateOrder", "clientID", o.ClientID)

	if _, err := s.clientRepo.GetByID(ctx, o.ClientID); err != nil {
		return nil, err
	}
	if o.TotalAmountCents < 0 {
		return nil, domain.NewValidationError("total_amount_cents", "must not be negative")
	}
	if len(o.Items) == 0 {
		return nil, domain.NewValidationError("items", "order needs at least one line item")
	}
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			return nil, domain.NewValidationError("items", "quantity must be positive")
		}
	}

	o.ID = uuid.NewString()
	for i := range o.Items {
		o.Items[i].ID = uuid.NewString()
	}
	o.Status = domain.OrderStatusPending
	if o.ExpectedReturnDate == "" {
		o.ExpectedReturnDate = o.RentalEndDate
	}
	o.DefaultChargeableDays = pricing.ChargeableDays(o.RentalStartDate, o.RentalEndDate, 1)
	if o.ChargeableDays == 0 {
		o.ChargeableDays = o.DefaultChargeableDays
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		logger.ExitMethodWithError("orderService.CreateOrder", err, "clientID", o.ClientID)
		return nil, err
	}

	logger.ExitMethod("orderService.CreateOrder", "orderID", o.ID, "days", o.DefaultChargeableDays)
	return o, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// UpdateOrder applies a generic edit. The client reference, status, pricing
// fields, and line item price snapshots are owned by the lifecycle and never
// change here.
func (s *orderService) UpdateOrder(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	existing, err := s.orderRepo.GetByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	existing.RentalStartDate = o.RentalStartDate
	existing.RentalEndDate = o.RentalEndDate
	existing.ExpectedReturnDate = o.ExpectedReturnDate
	existing.AmountPaidCents = o.AmountPaidCents
	existing.DiscountAmountCents = o.DiscountAmountCents
	existing.Notes = o.Notes

	if err := s.orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *orderService) ListOrders(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	return s.orderRepo.List(ctx, status, page, pageSize)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus, actualReturnDate string, overrideDays int) (*StatusUpdateResult, error) {
	logger.EnterMethod("orderService.UpdateStatus", "orderID", orderID, "next", next)

	if !next.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", next))
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.ExitMethodWithError("orderService.UpdateStatus", err, "orderID", orderID)
		return nil, err
	}

	from := order.Status
	if !from.CanTransition(next) {
		err := &domain.StateError{From: from, To: next}
		logger.ExitMethodWithError("orderService.UpdateStatus", err, "orderID", orderID)
		return nil, err
	}

	result := &StatusUpdateResult{}

	switch next {
	case domain.OrderStatusCompleted:
		if actualReturnDate == "" {
			return nil, domain.NewValidationError("actual_return_date", "required to complete an order")
		}
		analysis := pricing.AnalyzeReturn(actualReturnDate, order.ExpectedReturnDate, s.graceDays)
		result.ReturnStatus = analysis.Status
		if analysis.Status == pricing.ReturnStatusLate {
			logger.Info("Late return", "orderID", orderID, "extraDays", analysis.ExtraDays)
		}
		adj := pricing.ReturnAdjustment(order.TotalAmountCents, order.DefaultChargeableDays,
			order.RentalStartDate, actualReturnDate, overrideDays)
		if adj.Fallback {
			// Degraded pricing: keep the planned amount rather than fail the
			// return. Flagged here so the books can be reconciled later.
			logger.Warn("Return pricing fell back to no adjustment",
				"orderID", orderID, "start", order.RentalStartDate, "actual", actualReturnDate)
		}
		order.ActualReturnDate = &actualReturnDate
		order.TotalAmountCents = adj.AdjustedAmountCents
		order.ChargeableDays = adj.ChargeableDays
		result.Adjustment = &adj

	case domain.OrderStatusCancelled:
		adj := pricing.CancellationFee(order.TotalAmountCents)
		order.TotalAmountCents = adj.AdjustedAmountCents
		order.ChargeableDays = adj.ChargeableDays
		result.Adjustment = &adj
	}

	order.Status = next
	applied, err := s.orderRepo.UpdateWithStatusGuard(ctx, order, from)
	if err != nil {
		logger.ExitMethodWithError("orderService.UpdateStatus", err, "orderID", orderID)
		return nil, err
	}
	if !applied {
		// A concurrent request moved the order first; this transition lost.
		err := &domain.StateError{From: from, To: next}
		logger.ExitMethodWithError("orderService.UpdateStatus", err, "orderID", orderID, "reason", "concurrent transition")
		return nil, err
	}
	result.Order = order

	// The status and pricing update above is durable. Task recording and
	// client messaging may still fail; they are reported, never rolled back.
	switch next {
	case domain.OrderStatusConfirmed:
		s.notifyClient(ctx, order, fmt.Sprintf("Your rental order is confirmed for %s. Total: %s.",
			order.RentalStartDate, formatAmount(order.TotalAmountCents)))

	case domain.OrderStatusInProgress:
		if _, err := s.taskSvc.RecordForOrder(ctx, order, domain.TaskTypeIssuing); err != nil {
			logger.Warn("Issuing task not recorded", "orderID", order.ID, "error", err)
			result.TaskErr = err
		}

	case domain.OrderStatusCompleted:
		if _, err := s.taskSvc.RecordForOrder(ctx, order, domain.TaskTypeReceiving); err != nil {
			logger.Warn("Receiving task not recorded", "orderID", order.ID, "error", err)
			result.TaskErr = err
		}
		s.notifyCompletion(ctx, order, *result.Adjustment)

	case domain.OrderStatusCancelled:
		s.notifyClient(ctx, order, fmt.Sprintf("Your rental order was cancelled. Cancellation fee: %s, refund due: %s.",
			formatAmount(result.Adjustment.AdjustedAmountCents), formatAmount(-result.Adjustment.DifferenceCents)))
	}

	logger.ExitMethod("orderService.UpdateStatus", "orderID", orderID, "from", from, "to", next)
	return result, nil
}

// notifyCompletion messages the client and mails the invoice. The adjustment
// direction is always spelled out: a bare adjusted total is never enough.
func (s *orderService) notifyCompletion(ctx context.Context, order *domain.Order, adj pricing.Adjustment) {
	var body string
	switch adj.Direction() {
	case "refund":
		body = fmt.Sprintf("Your rental is complete. Final total: %s. A refund of %s is due to you.",
			formatAmount(adj.AdjustedAmountCents), formatAmount(-adj.DifferenceCents))
	case "extra_charge":
		body = fmt.Sprintf("Your rental is complete. Final total: %s, including a late-return charge of %s.",
			formatAmount(adj.AdjustedAmountCents), formatAmount(adj.DifferenceCents))
	default:
		body = fmt.Sprintf("Your rental is complete. Final total: %s.", formatAmount(adj.AdjustedAmountCents))
	}
	s.notifyClient(ctx, order, body)

	client, err := s.clientRepo.GetByID(ctx, order.ClientID)
	if err != nil {
		logger.Warn("Invoice skipped, client lookup failed", "orderID", order.ID, "error", err)
		return
	}
	if client.Email == "" {
		return
	}
	if err := s.invoiceSvc.SendInvoice(ctx, client, order, adj); err != nil {
		logger.Warn("Invoice email failed", "orderID", order.ID, "error", err)
	}
}

func (s *orderService) notifyClient(ctx context.Context, order *domain.Order, body string) {
	client, err := s.clientRepo.GetByID(ctx, order.ClientID)
	if err != nil || client.Phone == "" {
		return
	}
	if err := s.smsSvc.Notify(ctx, client.Phone, body); err != nil {
		logger.Warn("Client SMS failed", "orderID", order.ID, "error", err)
	}
}

func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
