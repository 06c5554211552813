package repository

import "github.com/invorya/muebleria-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el libro de movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	Update(movement *entity.StockMovement) error
	Delete(id string) error
	DeleteByProduct(productID string) error
}
