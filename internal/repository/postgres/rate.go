package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type taskRateRepository struct {
	db *sql.DB
}

func NewTaskRateRepository(db *sql.DB) repository.TaskRateRepository {
	return &taskRateRepository{db: db}
}

func (r *taskRateRepository) Create(ctx context.Context, rate *domain.TaskRate) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO task_rates (id, task_type, category, rate_per_unit_cents, unit, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, rate.ID, rate.TaskType, rate.Category, rate.RatePerUnitCents, rate.Unit, now, now)
	if err != nil {
		return err
	}
	rate.CreatedOn = now
	rate.UpdatedOn = now
	return nil
}

func (r *taskRateRepository) Update(ctx context.Context, rate *domain.TaskRate) error {
	query := `UPDATE task_rates SET task_type=$1, category=$2, rate_per_unit_cents=$3, unit=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, rate.TaskType, rate.Category, rate.RatePerUnitCents, rate.Unit,
		time.Now().Format("2006-01-02 15:04:05"), rate.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("task rate", rate.ID)
	}
	return nil
}

func (r *taskRateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_rates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("task rate", id)
	}
	return nil
}

func (r *taskRateRepository) List(ctx context.Context) ([]domain.TaskRate, error) {
	query := `SELECT id, task_type, category, rate_per_unit_cents, unit, created_on, updated_on FROM task_rates ORDER BY task_type, category`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.TaskRate
	for rows.Next() {
		var rate domain.TaskRate
		if err := rows.Scan(&rate.ID, &rate.TaskType, &rate.Category, &rate.RatePerUnitCents, &rate.Unit, &rate.CreatedOn, &rate.UpdatedOn); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

func (r *taskRateRepository) ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error) {
	query := `SELECT id, task_type, vehicle_type, flat_fee_cents FROM vehicle_rates ORDER BY task_type, vehicle_type`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.VehicleRate
	for rows.Next() {
		var rate domain.VehicleRate
		if err := rows.Scan(&rate.ID, &rate.TaskType, &rate.VehicleType, &rate.FlatFeeCents); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
