package entity

import "time"

// Inventory representa la existencia actual de un producto (una fila por producto).
// Quantity es derivado: siempre igual a la suma con signo de los movimientos del producto.
type Inventory struct {
	ID        string
	ProductID string // único
	Quantity  int64  // >= 0 en todo momento
	UpdatedAt time.Time
}
