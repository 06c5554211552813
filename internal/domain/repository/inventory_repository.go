package repository

import "github.com/invorya/muebleria-api/internal/domain/entity"

// InventoryRepository define el puerto para la fila de existencias de cada producto.
// Usado dentro de transacciones para garantizar consistencia con los movimientos.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetByProduct(productID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la tx.
	// Devuelve nil si el producto no tiene fila de inventario.
	GetForUpdate(productID string) (*entity.Inventory, error)
	UpdateQuantity(id string, quantity int64) error
	DeleteByProduct(productID string) error
}
