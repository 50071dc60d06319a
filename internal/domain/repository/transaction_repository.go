package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// TransactionRepository define el puerto de lectura de ventas para el motor
// de reportes. Las implementaciones son read-only; el motor nunca escribe.
type TransactionRepository interface {
	// QueryWindow devuelve las ventas cuyo CreatedAt cae en [start, end],
	// ordenadas por fecha de creación ascendente. status y operatorID vacíos
	// significan "cualquiera". Una ventana sin ventas devuelve slice vacío,
	// nunca error.
	QueryWindow(ctx context.Context, start, end time.Time, status, operatorID string) ([]entity.Transaction, error)

	// ListByOperator devuelve el histórico completo de ventas de un cajero
	// (todos los estados), ordenado por fecha ascendente.
	ListByOperator(ctx context.Context, operatorID string) ([]entity.Transaction, error)
}
