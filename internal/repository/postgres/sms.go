package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type smsOutboxRepository struct {
	db *sql.DB
}

func NewSMSOutboxRepository(db *sql.DB) repository.SMSOutboxRepository {
	return &smsOutboxRepository{db: db}
}

func (r *smsOutboxRepository) Enqueue(ctx context.Context, m *domain.SMSMessage) error {
	now := time.Now()
	query := `INSERT INTO sms_outbox (id, phone, body, status, attempts, last_error, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Phone, m.Body, m.Status, m.Attempts, m.LastError, now)
	if err != nil {
		return err
	}
	m.CreatedOn = now
	return nil
}

func (r *smsOutboxRepository) Update(ctx context.Context, m *domain.SMSMessage) error {
	query := `UPDATE sms_outbox SET status=$1, attempts=$2, last_error=$3, sent_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, m.Status, m.Attempts, m.LastError, m.SentOn, m.ID)
	return err
}

func (r *smsOutboxRepository) ListPending(ctx context.Context, limit int32) ([]domain.SMSMessage, error) {
	query := `SELECT id, phone, body, status, attempts, last_error, created_on, sent_on
	          FROM sms_outbox WHERE status = $1 ORDER BY created_on LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, domain.SMSStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.SMSMessage
	for rows.Next() {
		var m domain.SMSMessage
		if err := rows.Scan(&m.ID, &m.Phone, &m.Body, &m.Status, &m.Attempts, &m.LastError, &m.CreatedOn, &m.SentOn); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
