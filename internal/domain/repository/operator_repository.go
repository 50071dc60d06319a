package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// OperatorRepository define el puerto de lectura de cajeros, usado solo para
// resolver nombres en los listados de actividad.
type OperatorRepository interface {
	// GetByID devuelve el operador o domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*entity.Operator, error)
}
