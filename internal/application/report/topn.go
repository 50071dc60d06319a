package report

import (
	"sort"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultTopN es el tamaño del ranking de productos cuando no se pide otro.
const DefaultTopN = 10

// UnknownProductLabel se usa cuando una línea referencia un producto que ya
// no existe en el catálogo. El ingreso y las unidades de la línea cuentan
// igual; solo el nombre se sustituye.
const UnknownProductLabel = "Unknown Product"

// ProductNameLookup resuelve el nombre visible de un producto. ok = false si
// el producto no se encuentra.
type ProductNameLookup func(productID string) (name string, ok bool)

// TopProduct es una entrada del ranking: ingreso y unidades agrupados por
// producto a través de todas las transacciones del conjunto.
type TopProduct struct {
	ProductID    string
	Name         string
	TotalRevenue decimal.Decimal
	TotalUnits   int
}

// TopProducts agrupa las líneas de todas las transacciones por producto,
// ordena descendente por ingreso y trunca a n (DefaultTopN si n <= 0).
//
// Empates en ingreso conservan el orden del primer encuentro del producto en
// la entrada: el sistema original ordenaba en la base de datos sin clave
// secundaria, así que el desempate queda deliberadamente estable en lugar de
// inventar un criterio de negocio.
func TopProducts(txns []entity.Transaction, n int, lookup ProductNameLookup) []TopProduct {
	if n <= 0 {
		n = DefaultTopN
	}

	type group struct {
		revenue decimal.Decimal
		units   int
	}
	groups := make(map[string]*group)
	order := make([]string, 0) // IDs en orden de primer encuentro

	for _, tx := range txns {
		for _, item := range tx.Items {
			g, ok := groups[item.ProductID]
			if !ok {
				g = &group{revenue: decimal.Zero}
				groups[item.ProductID] = g
				order = append(order, item.ProductID)
			}
			g.revenue = g.revenue.Add(item.Subtotal)
			g.units += item.Quantity
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].revenue.GreaterThan(groups[order[j]].revenue)
	})
	if len(order) > n {
		order = order[:n]
	}

	ranking := make([]TopProduct, 0, len(order))
	for _, id := range order {
		name := UnknownProductLabel
		if lookup != nil {
			if resolved, ok := lookup(id); ok {
				name = resolved
			}
		}
		ranking = append(ranking, TopProduct{
			ProductID:    id,
			Name:         name,
			TotalRevenue: groups[id].revenue,
			TotalUnits:   groups[id].units,
		})
	}
	return ranking
}
