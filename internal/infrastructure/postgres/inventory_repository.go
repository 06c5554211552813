package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/muebleria-api/internal/domain/entity"
	"github.com/invorya/muebleria-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta la fila de inventario de un producto (una por producto, UNIQUE en product_id).
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, inv.ID, inv.ProductID, inv.Quantity, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de inventario por su ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	return r.get(`SELECT id, product_id, quantity, updated_at FROM inventory WHERE id = $1`, id)
}

// GetByProduct obtiene la fila de inventario de un producto.
func (r *InventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	return r.get(`SELECT id, product_id, quantity, updated_at FROM inventory WHERE product_id = $1`, productID)
}

// GetForUpdate obtiene la fila del producto y la bloquea (SELECT FOR UPDATE).
// Devuelve nil si no existe; el caller decide el error de dominio.
func (r *InventoryRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	return r.get(`SELECT id, product_id, quantity, updated_at FROM inventory WHERE product_id = $1 FOR UPDATE`, productID)
}

// UpdateQuantity fija la cantidad de una fila de inventario.
func (r *InventoryRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// DeleteByProduct elimina la fila de inventario de un producto (baja en cascada).
func (r *InventoryRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) get(query string, arg any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}
