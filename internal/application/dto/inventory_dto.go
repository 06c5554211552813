package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryResponse fila de inventario unida con su producto.
type InventoryResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	StockUnit    string          `json:"stock_unit"`
	Quantity     int64           `json:"quantity"`
	MinimumStock int64           `json:"minimum_stock"`
	Price        decimal.Decimal `json:"price"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SetQuantityRequest body para PUT /api/inventory/:id (ajuste manual de existencias).
type SetQuantityRequest struct {
	Quantity *int64 `json:"quantity" validate:"required,min=0"`
}

// TotalValueResponse valor total del inventario: Σ(cantidad × precio).
type TotalValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value"`
}
