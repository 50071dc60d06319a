package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador read-only del catálogo para el motor de reportes.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// ActiveSnapshot devuelve la instantánea de productos activos.
func (r *ProductRepo) ActiveSnapshot(ctx context.Context) ([]entity.Product, error) {
	const query = `
	SELECT id, name, price, cost, stock, min_stock, active, COALESCE(category_id, ''), created_at, updated_at
	FROM products
	WHERE active = TRUE
	ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products.ActiveSnapshot: %w", err)
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Cost, &p.Stock, &p.MinStock, &p.Active, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("products.ActiveSnapshot scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByID devuelve el producto o domain.ErrNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	const query = `
	SELECT id, name, price, cost, stock, min_stock, active, COALESCE(category_id, ''), created_at, updated_at
	FROM products
	WHERE id = $1`

	var p entity.Product
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Cost, &p.Stock, &p.MinStock, &p.Active, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("products.GetByID: %w", err)
	}
	return &p, nil
}
