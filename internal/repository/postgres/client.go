package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO clients (id, name, phone, address, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Phone, c.Address, c.Notes, now, now)
	if err != nil {
		return err
	}
	c.CreatedOn = now
	c.UpdatedOn = now
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, phone, address, notes, created_on, updated_on FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Notes, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("client", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, phone=$2, address=$3, notes=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.Address, c.Notes,
		time.Now().Format("2006-01-02 15:04:05"), c.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("client", c.ID)
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM clients").Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, phone, address, notes, created_on, updated_on FROM clients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Notes, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	return clients, count, rows.Err()
}
