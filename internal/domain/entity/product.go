package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock actual no vive aquí:
// se mantiene en Inventory y se modifica solo vía movimientos.
type Product struct {
	ID           string
	Name         string
	StockUnit    string
	Description  string
	CategoryID   string          // vacío si no tiene categoría asignada
	Price        decimal.Decimal // precio de venta, >= 0
	MinimumStock int64           // umbral de stock bajo, >= 0
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
