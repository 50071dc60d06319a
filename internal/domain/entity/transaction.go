package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transacción de venta (caja).
const (
	StatusPending   = "pending"   // cobro iniciado, no confirmado
	StatusCompleted = "completed" // pagada; única que suma a métricas de venta
	StatusRefunded  = "refunded"  // devuelta; excluida de ingresos
)

// Transaction representa una venta registrada en caja.
//
// Total debería ser igual a la suma de los Subtotal de sus items; esa
// consistencia la garantiza (o no) el módulo que crea la venta. El motor de
// reportes la asume y nunca la corrige.
type Transaction struct {
	ID         string
	OperatorID string // cajero que procesó la venta
	Total      decimal.Decimal
	Status     string // pending, completed, refunded
	Items      []TransactionItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsCompleted indica si la transacción participa en métricas de ingreso.
func (t Transaction) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// UnitCount devuelve el total de unidades vendidas en la transacción.
func (t Transaction) UnitCount() int {
	var units int
	for _, it := range t.Items {
		units += it.Quantity
	}
	return units
}

// TransactionItem representa una línea de detalle de una venta.
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	Quantity      int // siempre >= 1
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal // Quantity * UnitPrice al momento de la venta
}
