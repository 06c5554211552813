package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRow fila de inventario unida con su producto para listados.
type InventoryRow struct {
	InventoryID  string
	ProductID    string
	ProductName  string
	StockUnit    string
	Quantity     int64
	MinimumStock int64
	Price        decimal.Decimal
	UpdatedAt    time.Time
}

// LowStockRow producto cuyo stock actual está en o bajo su mínimo configurado.
type LowStockRow struct {
	ProductID    string
	ProductName  string
	CategoryName string // vacío si no tiene categoría
	StockUnit    string
	Quantity     int64
	MinimumStock int64
	Price        decimal.Decimal
}

// MovementRow movimiento unido con nombre de producto y username del actor.
type MovementRow struct {
	MovementID  string
	ProductID   string
	ProductName string
	Quantity    int64
	Type        string
	Notes       string
	UserID      string
	Username    string
	CreatedAt   time.Time
}

// MovementFilter filtros opcionales para el listado de movimientos.
type MovementFilter struct {
	ProductID string     // vacío = todos los productos
	From      *time.Time // createdAt >= From
	To        *time.Time // createdAt <= To
	Limit     int
	Offset    int
}

// ReportRepository consultas de solo lectura que cruzan producto, categoría,
// inventario y movimientos (joins explícitos, sin carga implícita de asociaciones).
type ReportRepository interface {
	ListInventory(ctx context.Context) ([]InventoryRow, error)
	GetInventoryByProduct(ctx context.Context, productID string) (*InventoryRow, error)
	ListLowStock(ctx context.Context) ([]LowStockRow, error)
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	ListMovements(ctx context.Context, filter MovementFilter) ([]MovementRow, error)
}
