package postgres

import (
	"context"
	"testing"

	"rentops-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := &domain.Order{
			ID:               "ord-1",
			ClientID:         "cli-1",
			RentalStartDate:  "2026-07-01",
			RentalEndDate:    "2026-07-05",
			ExpectedReturnDate: "2026-07-05",
			TotalAmountCents: 1000000,
			ChargeableDays:   5,
			DefaultChargeableDays: 5,
			Status:           domain.OrderStatusPending,
			Items: []domain.OrderItem{
				{ID: "item-1", ProductID: "prod-1", ProductName: "Folding chair", Quantity: 100, UnitPriceCents: 10000},
			},
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(order.ID, order.ClientID, order.RentalStartDate, order.RentalEndDate, order.ExpectedReturnDate,
				order.TotalAmountCents, order.AmountPaidCents, order.DiscountAmountCents, order.ChargeableDays,
				order.DefaultChargeableDays, order.Status, order.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WithArgs("item-1", "ord-1", "prod-1", "Folding chair", 100, int64(10000)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, order)
		assert.NoError(t, err)
		assert.Equal(t, "ord-1", order.Items[0].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnItemFailure", func(t *testing.T) {
		order := &domain.Order{
			ID:       "ord-2",
			ClientID: "cli-1",
			Status:   domain.OrderStatusPending,
			Items:    []domain.OrderItem{{ID: "item-2", ProductID: "prod-1", Quantity: 1}},
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Create(ctx, order)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderRows := sqlmock.NewRows([]string{"id", "client_id", "rental_start_date", "rental_end_date",
			"expected_return_date", "actual_return_date", "total_amount_cents", "amount_paid_cents",
			"discount_amount_cents", "chargeable_days", "default_chargeable_days", "status", "notes",
			"created_on", "updated_on"}).
			AddRow("ord-1", "cli-1", "2026-07-01", "2026-07-05", "2026-07-05", nil,
				1000000, 0, 0, 5, 5, "CONFIRMED", "", "2026-06-20", "2026-06-20")
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
			WithArgs("ord-1").
			WillReturnRows(orderRows)

		itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "unit_price_cents"}).
			AddRow("item-1", "ord-1", "prod-1", "Folding chair", 100, 10000)
		mock.ExpectQuery("SELECT (.+) FROM order_items WHERE order_id = \\$1").
			WithArgs("ord-1").
			WillReturnRows(itemRows)

		order, err := repo.GetByID(ctx, "ord-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, int64(10000), order.Items[0].UnitPriceCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "missing")
		assert.Error(t, err)
		var nfErr *domain.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestOrderRepository_UpdateWithStatusGuard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &domain.Order{
		ID:               "ord-1",
		TotalAmountCents: 600000,
		ChargeableDays:   3,
		Status:           domain.OrderStatusCompleted,
	}

	t.Run("Applied", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders SET").
			WithArgs(order.ActualReturnDate, order.TotalAmountCents, order.ChargeableDays, order.Status,
				sqlmock.AnyArg(), order.ID, domain.OrderStatusInProgress).
			WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.UpdateWithStatusGuard(ctx, order, domain.OrderStatusInProgress)
		assert.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("LostRace", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders SET").
			WithArgs(order.ActualReturnDate, order.TotalAmountCents, order.ChargeableDays, order.Status,
				sqlmock.AnyArg(), order.ID, domain.OrderStatusInProgress).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.UpdateWithStatusGuard(ctx, order, domain.OrderStatusInProgress)
		assert.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestOrderRepository_RentedQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("SumsActiveOrders", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(oi.quantity\\), 0\\)").
			WithArgs("prod-1", domain.OrderStatusConfirmed, domain.OrderStatusInProgress).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(130))

		rented, err := repo.RentedQuantity(ctx, "prod-1")
		assert.NoError(t, err)
		assert.Equal(t, 130, rented)
	})

	t.Run("ZeroWhenNoActiveOrders", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(oi.quantity\\), 0\\)").
			WithArgs("prod-2", domain.OrderStatusConfirmed, domain.OrderStatusInProgress).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0))

		rented, err := repo.RentedQuantity(ctx, "prod-2")
		assert.NoError(t, err)
		assert.Equal(t, 0, rented)
	})
}
