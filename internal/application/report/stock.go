package report

import (
	"sort"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel se usa cuando el producto no tiene categoría asignada.
const UncategorizedLabel = "Uncategorized"

// LowStockItem es un producto en o bajo su punto de reorden, listo para
// mostrar en el reporte de inventario.
type LowStockItem struct {
	ProductID string
	Name      string
	Current   int // unidades disponibles
	Minimum   int // punto de reorden del propio producto
	Category  string
}

// LowStock devuelve los productos activos con Stock <= MinStock, ordenados
// ascendente por stock (los más urgentes primero).
//
// La comparación es entre dos campos del mismo registro (el stock contra su
// propio umbral configurado), no contra una constante global.
func LowStock(products []entity.Product) []LowStockItem {
	items := make([]LowStockItem, 0)
	for _, p := range products {
		if !p.IsLowStock() {
			continue
		}
		category := p.CategoryID
		if category == "" {
			category = UncategorizedLabel
		}
		items = append(items, LowStockItem{
			ProductID: p.ID,
			Name:      p.Name,
			Current:   p.Stock,
			Minimum:   p.MinStock,
			Category:  category,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Current < items[j].Current
	})
	return items
}

// OutOfStock devuelve los productos activos con stock cero. Siempre es un
// subconjunto de LowStock (MinStock >= 0).
func OutOfStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.IsOutOfStock() {
			out = append(out, p)
		}
	}
	return out
}

// InventoryValue devuelve la valoración del inventario activo:
// Σ (precio de venta × stock disponible).
func InventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if !p.Active {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}
