package entity

import "time"

// Roles válidos para Operator.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// Operator representa al cajero que procesa ventas en el punto de venta.
// No es un cliente: ver la nota sobre "active_customers" en DESIGN.md.
type Operator struct {
	ID        string
	Name      string
	Email     string
	Role      string // admin, cajero
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
