package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, client_id, rental_start_date, rental_end_date, expected_return_date, actual_return_date,
	total_amount_cents, amount_paid_cents, discount_amount_cents, chargeable_days, default_chargeable_days,
	status, notes, created_on, updated_on`

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO orders (id, client_id, rental_start_date, rental_end_date, expected_return_date,
	          total_amount_cents, amount_paid_cents, discount_amount_cents, chargeable_days, default_chargeable_days,
	          status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(ctx, query, o.ID, o.ClientID, o.RentalStartDate, o.RentalEndDate, o.ExpectedReturnDate,
		o.TotalAmountCents, o.AmountPaidCents, o.DiscountAmountCents, o.ChargeableDays, o.DefaultChargeableDays,
		o.Status, o.Notes, now, now)
	if err != nil {
		return err
	}

	itemQuery := `INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price_cents)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if _, err := tx.ExecContext(ctx, itemQuery, item.ID, item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceCents); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	o.CreatedOn = now
	o.UpdatedOn = now
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.ClientID, &o.RentalStartDate, &o.RentalEndDate,
		&o.ExpectedReturnDate, &o.ActualReturnDate, &o.TotalAmountCents, &o.AmountPaidCents, &o.DiscountAmountCents,
		&o.ChargeableDays, &o.DefaultChargeableDays, &o.Status, &o.Notes, &o.CreatedOn, &o.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("order", id)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, unit_price_cents FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET client_id=$1, rental_start_date=$2, rental_end_date=$3, expected_return_date=$4,
	          actual_return_date=$5, total_amount_cents=$6, amount_paid_cents=$7, discount_amount_cents=$8,
	          chargeable_days=$9, default_chargeable_days=$10, status=$11, notes=$12, updated_on=$13 WHERE id=$14`
	res, err := r.db.ExecContext(ctx, query, o.ClientID, o.RentalStartDate, o.RentalEndDate, o.ExpectedReturnDate,
		o.ActualReturnDate, o.TotalAmountCents, o.AmountPaidCents, o.DiscountAmountCents, o.ChargeableDays,
		o.DefaultChargeableDays, o.Status, o.Notes, time.Now().Format("2006-01-02 15:04:05"), o.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("order", o.ID)
	}
	return nil
}

func (r *orderRepository) UpdateWithStatusGuard(ctx context.Context, o *domain.Order, expected domain.OrderStatus) (bool, error) {
	query := `UPDATE orders SET actual_return_date=$1, total_amount_cents=$2, chargeable_days=$3, status=$4, updated_on=$5
	          WHERE id=$6 AND status=$7`
	res, err := r.db.ExecContext(ctx, query, o.ActualReturnDate, o.TotalAmountCents, o.ChargeableDays, o.Status,
		time.Now().Format("2006-01-02 15:04:05"), o.ID, expected)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *orderRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM orders"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf("SELECT "+orderColumns+" FROM orders"+where+" ORDER BY created_on DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	return r.queryOrders(ctx, query, count, args...)
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID string, page, pageSize int32) ([]domain.Order, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM orders WHERE client_id = $1", clientID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + orderColumns + " FROM orders WHERE client_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3"
	return r.queryOrders(ctx, query, count, clientID, pageSize, offset)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, count int32, args ...interface{}) ([]domain.Order, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.RentalStartDate, &o.RentalEndDate, &o.ExpectedReturnDate,
			&o.ActualReturnDate, &o.TotalAmountCents, &o.AmountPaidCents, &o.DiscountAmountCents, &o.ChargeableDays,
			&o.DefaultChargeableDays, &o.Status, &o.Notes, &o.CreatedOn, &o.UpdatedOn); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, count, rows.Err()
}

// RentedQuantity sums a product's quantity across line items of orders that
// currently hold stock (confirmed or in progress). No counter is maintained;
// the active orders are the source of truth.
func (r *orderRepository) RentedQuantity(ctx context.Context, productID string) (int, error) {
	query := `SELECT COALESCE(SUM(oi.quantity), 0)
	          FROM order_items oi
	          JOIN orders o ON o.id = oi.order_id
	          WHERE oi.product_id = $1 AND o.status IN ($2, $3)`
	var total int
	err := r.db.QueryRowContext(ctx, query, productID, domain.OrderStatusConfirmed, domain.OrderStatusInProgress).Scan(&total)
	return total, err
}
