package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo.
type ProductRepository interface {
	// ActiveSnapshot devuelve una instantánea inmutable de los productos
	// activos. El motor de reportes no cachea el resultado entre llamadas.
	ActiveSnapshot(ctx context.Context) ([]entity.Product, error)

	// GetByID devuelve el producto o domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
