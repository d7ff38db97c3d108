package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type workerTaskRepository struct {
	db *sql.DB
}

func NewWorkerTaskRepository(db *sql.DB) repository.WorkerTaskRepository {
	return &workerTaskRepository{db: db}
}

func (r *workerTaskRepository) Create(ctx context.Context, t *domain.WorkerTask) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO worker_tasks (id, order_id, task_type, task_amount_cents, notes, completed_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query, t.ID, t.OrderID, t.Type, t.TaskAmountCents, t.Notes, t.CompletedAt, now); err != nil {
		return err
	}

	workerQuery := `INSERT INTO worker_task_workers (task_id, worker_id, present) VALUES ($1, $2, $3)`
	for _, w := range t.Workers {
		if _, err := tx.ExecContext(ctx, workerQuery, t.ID, w.WorkerID, w.Present); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	t.CreatedOn = now
	return nil
}

func (r *workerTaskRepository) GetByID(ctx context.Context, id string) (*domain.WorkerTask, error) {
	t := &domain.WorkerTask{}
	query := `SELECT id, order_id, task_type, task_amount_cents, notes, completed_at, created_on FROM worker_tasks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.OrderID, &t.Type, &t.TaskAmountCents, &t.Notes, &t.CompletedAt, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("worker task", id)
	}
	if err != nil {
		return nil, err
	}

	workers, err := r.loadWorkers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Workers = workers
	return t, nil
}

func (r *workerTaskRepository) loadWorkers(ctx context.Context, taskID string) ([]domain.TaskWorker, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT worker_id, present FROM worker_task_workers WHERE task_id = $1`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []domain.TaskWorker
	for rows.Next() {
		var w domain.TaskWorker
		if err := rows.Scan(&w.WorkerID, &w.Present); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *workerTaskRepository) Update(ctx context.Context, t *domain.WorkerTask) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE worker_tasks SET task_type=$1, task_amount_cents=$2, notes=$3, completed_at=$4 WHERE id=$5`,
		t.Type, t.TaskAmountCents, t.Notes, t.CompletedAt, t.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("worker task", t.ID)
	}

	// Worker list is replaced wholesale on edit.
	if _, err := tx.ExecContext(ctx, `DELETE FROM worker_task_workers WHERE task_id = $1`, t.ID); err != nil {
		return err
	}
	for _, w := range t.Workers {
		if _, err := tx.ExecContext(ctx, `INSERT INTO worker_task_workers (task_id, worker_id, present) VALUES ($1, $2, $3)`,
			t.ID, w.WorkerID, w.Present); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *workerTaskRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM worker_task_workers WHERE task_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM worker_tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("worker task", id)
	}
	return tx.Commit()
}

func (r *workerTaskRepository) ListByOrder(ctx context.Context, orderID string) ([]domain.WorkerTask, error) {
	query := `SELECT id, order_id, task_type, task_amount_cents, notes, completed_at, created_on
	          FROM worker_tasks WHERE order_id = $1 ORDER BY completed_at`
	return r.queryTasks(ctx, query, orderID)
}

func (r *workerTaskRepository) ListByWorkerBetween(ctx context.Context, workerID, startDate, endDate string) ([]domain.WorkerTask, error) {
	query := `SELECT t.id, t.order_id, t.task_type, t.task_amount_cents, t.notes, t.completed_at, t.created_on
	          FROM worker_tasks t
	          JOIN worker_task_workers tw ON tw.task_id = t.id
	          WHERE tw.worker_id = $1 AND t.completed_at >= $2::date AND t.completed_at < ($3::date + interval '1 day')
	          ORDER BY t.completed_at`
	return r.queryTasks(ctx, query, workerID, startDate, endDate)
}

func (r *workerTaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]domain.WorkerTask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.WorkerTask
	for rows.Next() {
		var t domain.WorkerTask
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Type, &t.TaskAmountCents, &t.Notes, &t.CompletedAt, &t.CreatedOn); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		workers, err := r.loadWorkers(ctx, tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Workers = workers
	}
	return tasks, nil
}
