package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	query := `INSERT INTO products (id, name, category, quantity, unit_price_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Category, p.Quantity, p.UnitPriceCents, now, now)
	if err != nil {
		return err
	}
	p.CreatedOn = now
	p.UpdatedOn = now
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT id, name, category, quantity, unit_price_cents, created_on, updated_on FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.UnitPriceCents, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("product", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, category=$2, quantity=$3, unit_price_cents=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Quantity, p.UnitPriceCents,
		time.Now().Format("2006-01-02 15:04:05"), p.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("product", p.ID)
	}
	return nil
}

func (r *productRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM products").Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, category, quantity, unit_price_cents, created_on, updated_on FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.UnitPriceCents, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, count, rows.Err()
}
