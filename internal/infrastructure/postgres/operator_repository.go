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

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo adaptador read-only de cajeros (solo resolución de nombres).
type OperatorRepo struct {
	pool *pgxpool.Pool
}

// NewOperatorRepository construye el adaptador.
func NewOperatorRepository(pool *pgxpool.Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

// GetByID devuelve el operador o domain.ErrNotFound.
func (r *OperatorRepo) GetByID(ctx context.Context, id string) (*entity.Operator, error) {
	const query = `
	SELECT id, name, email, role, status, created_at, updated_at
	FROM operators
	WHERE id = $1`

	var op entity.Operator
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&op.ID, &op.Name, &op.Email, &op.Role, &op.Status, &op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("operators.GetByID: %w", err)
	}
	return &op, nil
}
