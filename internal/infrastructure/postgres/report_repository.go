package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/muebleria-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura que cruzan producto, categoría, inventario y movimientos.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

const inventoryRowColumns = `
	i.id, i.product_id, p.name, p.stock_unit, i.quantity, p.minimum_stock, p.price, i.updated_at`

// ListInventory lista el inventario completo unido con su producto.
func (r *ReportRepo) ListInventory(ctx context.Context) ([]repository.InventoryRow, error) {
	query := `
		SELECT ` + inventoryRowColumns + `
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		ORDER BY p.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(&row.InventoryID, &row.ProductID, &row.ProductName, &row.StockUnit,
			&row.Quantity, &row.MinimumStock, &row.Price, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetInventoryByProduct obtiene la fila de inventario de un producto con su producto.
// Devuelve nil si el producto no tiene fila de inventario.
func (r *ReportRepo) GetInventoryByProduct(ctx context.Context, productID string) (*repository.InventoryRow, error) {
	query := `
		SELECT ` + inventoryRowColumns + `
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.product_id = $1`
	var row repository.InventoryRow
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&row.InventoryID, &row.ProductID, &row.ProductName, &row.StockUnit,
		&row.Quantity, &row.MinimumStock, &row.Price, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by product: %w", err)
	}
	return &row, nil
}

// ListLowStock devuelve los productos con quantity <= minimum_stock, con nombre de categoría.
func (r *ReportRepo) ListLowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT p.id, p.name, COALESCE(c.name, ''), p.stock_unit, i.quantity, p.minimum_stock, p.price
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE i.quantity <= p.minimum_stock
		ORDER BY i.quantity - p.minimum_stock, p.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.CategoryName, &row.StockUnit,
			&row.Quantity, &row.MinimumStock, &row.Price); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TotalInventoryValue calcula Σ(cantidad × precio) sobre todos los productos.
func (r *ReportRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(i.quantity * p.price), 0)
		FROM inventory i
		JOIN products p ON p.id = i.product_id`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return total, nil
}

// ListMovements lista movimientos más recientes primero, con filtros opcionales
// por producto y rango de createdAt, unidos con producto y usuario.
func (r *ReportRepo) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]repository.MovementRow, error) {
	query := `
		SELECT m.id, m.product_id, p.name, m.quantity, m.type, m.notes, m.user_id, u.username, m.created_at
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		JOIN users u ON u.id = m.user_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		if err := rows.Scan(&row.MovementID, &row.ProductID, &row.ProductName, &row.Quantity,
			&row.Type, &row.Notes, &row.UserID, &row.Username, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
