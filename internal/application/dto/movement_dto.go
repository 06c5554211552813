package dto

import "time"

// CreateMovementRequest body para POST /api/stock-movements.
type CreateMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Notes     string `json:"notes"`
}

// UpdateMovementRequest body para PUT /api/stock-movements/:id.
// Reemplaza el movimiento completo; el inventario se reconcilia contra el nuevo estado.
type UpdateMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Notes     string `json:"notes"`
}

// MovementResponse movimiento con nombre de producto y username del actor.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int64     `json:"quantity"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes,omitempty"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
