package report

import (
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Rollups sobre un conjunto ya filtrado de transacciones. El llamador decide
// qué estados participan; estas funciones suman lo que reciben.

// Sum devuelve el total acumulado de Total. Cero para entrada vacía.
func Sum(txns []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txns {
		total = total.Add(tx.Total)
	}
	return total
}

// Count devuelve la cardinalidad del conjunto.
func Count(txns []entity.Transaction) int {
	return len(txns)
}

// Average devuelve Sum/Count redondeado a 2 decimales, y cero para entrada
// vacía (nunca división por cero).
func Average(txns []entity.Transaction) decimal.Decimal {
	n := Count(txns)
	if n == 0 {
		return decimal.Zero
	}
	return Sum(txns).Div(decimal.NewFromInt(int64(n))).Round(2)
}

// UnitsSold devuelve el total de unidades (suma de cantidades de línea).
func UnitsSold(txns []entity.Transaction) int {
	var units int
	for _, tx := range txns {
		units += tx.UnitCount()
	}
	return units
}

// DistinctOperators devuelve cuántos cajeros distintos procesaron las
// transacciones del conjunto.
func DistinctOperators(txns []entity.Transaction) int {
	seen := make(map[string]struct{}, len(txns))
	for _, tx := range txns {
		if tx.OperatorID == "" {
			continue
		}
		seen[tx.OperatorID] = struct{}{}
	}
	return len(seen)
}
