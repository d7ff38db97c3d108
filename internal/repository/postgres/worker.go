package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type workerRepository struct {
	db *sql.DB
}

func NewWorkerRepository(db *sql.DB) repository.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, w *domain.Worker) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO workers (id, name, phone, daily_rate_cents, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, w.ID, w.Name, w.Phone, w.DailyRateCents, w.Active, now, now)
	if err != nil {
		return err
	}
	w.CreatedOn = now
	w.UpdatedOn = now
	return nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	w := &domain.Worker{}
	query := `SELECT id, name, phone, daily_rate_cents, active, created_on, updated_on FROM workers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.Phone, &w.DailyRateCents, &w.Active, &w.CreatedOn, &w.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("worker", id)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *workerRepository) Update(ctx context.Context, w *domain.Worker) error {
	query := `UPDATE workers SET name=$1, phone=$2, daily_rate_cents=$3, active=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, w.Name, w.Phone, w.DailyRateCents, w.Active,
		time.Now().Format("2006-01-02 15:04:05"), w.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("worker", w.ID)
	}
	return nil
}

func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]domain.Worker, error) {
	query := `SELECT id, name, phone, daily_rate_cents, active, created_on, updated_on FROM workers`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []domain.Worker
	for rows.Next() {
		var w domain.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.DailyRateCents, &w.Active, &w.CreatedOn, &w.UpdatedOn); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	query := `INSERT INTO attendance (id, worker_id, date, hours, notes) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.WorkerID, a.Date, a.Hours, a.Notes)
	return err
}

func (r *attendanceRepository) ListByWorkerBetween(ctx context.Context, workerID, startDate, endDate string) ([]domain.Attendance, error) {
	query := `SELECT id, worker_id, date, hours, notes FROM attendance
	          WHERE worker_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, workerID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.Date, &a.Hours, &a.Notes); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
