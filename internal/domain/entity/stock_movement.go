package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType reporta si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement representa un movimiento de stock (entrada o salida) contra un producto.
// Es el libro mayor del inventario: Inventory.Quantity se reconcilia contra estas filas.
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  int64  // siempre positivo; el signo lo da Type
	Type      string // IN, OUT
	Notes     string
	UserID    string // actor del movimiento
	CreatedAt time.Time
}
