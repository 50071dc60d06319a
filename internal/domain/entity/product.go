package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
//
// MinStock es el punto de reorden propio del producto: el estado "bajo stock"
// se decide comparando Stock contra el MinStock del mismo registro, nunca
// contra un umbral global.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta unitario
	Cost       decimal.Decimal // costo promedio
	Stock      int             // unidades disponibles, >= 0
	MinStock   int             // nivel mínimo configurado, >= 0
	Active     bool
	CategoryID string // vacío si no tiene categoría
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLowStock indica si el producto está en o bajo su punto de reorden.
// Solo aplica a productos activos.
func (p Product) IsLowStock() bool {
	return p.Active && p.Stock <= p.MinStock
}

// IsOutOfStock indica agotamiento total (subconjunto estricto de bajo stock).
func (p Product) IsOutOfStock() bool {
	return p.Active && p.Stock == 0
}
