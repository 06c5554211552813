package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price y MinimumStock son obligatorios.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	StockUnit    string          `json:"stock_unit" validate:"required,min=1,max=50"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock *int64          `json:"minimum_stock" validate:"required,min=0"`
	ImageURL     string          `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=100"`
	StockUnit    *string          `json:"stock_unit" validate:"omitempty,min=1,max=50"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	Price        *decimal.Decimal `json:"price"`
	MinimumStock *int64           `json:"minimum_stock" validate:"omitempty,min=0"`
	ImageURL     *string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	StockUnit    string          `json:"stock_unit"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id,omitempty"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock int64           `json:"minimum_stock"`
	ImageURL     string          `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LowStockItem producto en o bajo su stock mínimo, con contexto para la vista.
type LowStockItem struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name,omitempty"`
	StockUnit    string          `json:"stock_unit"`
	Quantity     int64           `json:"quantity"`
	MinimumStock int64           `json:"minimum_stock"`
	Price        decimal.Decimal `json:"price"`
}
