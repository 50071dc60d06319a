package report

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// Filtros puros sobre instantáneas. Todos preservan el orden de entrada y
// devuelven slice vacío (nunca error) ante entrada vacía.

// InWindow devuelve las transacciones cuyo CreatedAt cae dentro de la ventana.
func InWindow(txns []entity.Transaction, w Window) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txns))
	for _, tx := range txns {
		if w.Contains(tx.CreatedAt) {
			out = append(out, tx)
		}
	}
	return out
}

// WithStatus devuelve las transacciones con el estado dado. Un estado vacío
// devuelve la entrada sin filtrar.
func WithStatus(txns []entity.Transaction, status string) []entity.Transaction {
	if status == "" {
		return txns
	}
	out := make([]entity.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.Status == status {
			out = append(out, tx)
		}
	}
	return out
}

// ByOperator devuelve las transacciones procesadas por el cajero dado.
func ByOperator(txns []entity.Transaction, operatorID string) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.OperatorID == operatorID {
			out = append(out, tx)
		}
	}
	return out
}

// ActiveProducts devuelve los productos con Active = true.
func ActiveProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}
