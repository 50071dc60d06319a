package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador read-only de ventas para el motor de reportes.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// QueryWindow devuelve las ventas del rango [start, end] con sus líneas,
// ordenadas por fecha ascendente. status y operatorID vacíos = sin filtro.
func (r *TransactionRepo) QueryWindow(
	ctx context.Context,
	start, end time.Time,
	status, operatorID string,
) ([]entity.Transaction, error) {
	query := `
	SELECT id, operator_id, total, status, created_at, updated_at
	FROM transactions
	WHERE created_at BETWEEN $1 AND $2`
	args := []any{start, end}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if operatorID != "" {
		args = append(args, operatorID)
		query += fmt.Sprintf(" AND operator_id = $%d", len(args))
	}
	query += " ORDER BY created_at ASC"

	return r.queryTransactions(ctx, "QueryWindow", query, args...)
}

// ListByOperator devuelve el histórico completo de un cajero, todos los
// estados, ordenado por fecha ascendente.
func (r *TransactionRepo) ListByOperator(ctx context.Context, operatorID string) ([]entity.Transaction, error) {
	const query = `
	SELECT id, operator_id, total, status, created_at, updated_at
	FROM transactions
	WHERE operator_id = $1
	ORDER BY created_at ASC`

	return r.queryTransactions(ctx, "ListByOperator", query, operatorID)
}

// queryTransactions ejecuta la consulta de cabeceras y carga las líneas de
// todas las ventas devueltas en una segunda consulta (dos round-trips, no N+1).
func (r *TransactionRepo) queryTransactions(
	ctx context.Context,
	op, query string,
	args ...any,
) ([]entity.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("transactions.%s: %w", op, err)
	}
	defer rows.Close()

	txns := make([]entity.Transaction, 0)
	index := make(map[string]int) // transaction ID -> posición en txns
	for rows.Next() {
		var tx entity.Transaction
		if err := rows.Scan(&tx.ID, &tx.OperatorID, &tx.Total, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, fmt.Errorf("transactions.%s scan: %w", op, err)
		}
		index[tx.ID] = len(txns)
		txns = append(txns, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transactions.%s rows: %w", op, err)
	}
	if len(txns) == 0 {
		return txns, nil
	}

	ids := make([]string, 0, len(txns))
	for _, tx := range txns {
		ids = append(ids, tx.ID)
	}

	const itemsQuery = `
	SELECT id, transaction_id, product_id, quantity, unit_price, subtotal
	FROM transaction_items
	WHERE transaction_id = ANY($1)
	ORDER BY transaction_id, id`

	itemRows, err := r.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("transactions.%s items: %w", op, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item entity.TransactionItem
		if err := itemRows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("transactions.%s items scan: %w", op, err)
		}
		if pos, ok := index[item.TransactionID]; ok {
			txns[pos].Items = append(txns[pos].Items, item)
		}
	}
	return txns, itemRows.Err()
}
