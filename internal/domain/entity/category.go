package entity

import "time"

// Category representa una categoría de productos (sala, comedor, alcoba, etc.).
type Category struct {
	ID          string
	Name        string
	StockUnit   string // unidad de medida por defecto: unidad, juego, metro
	Description string // vacío si no aplica
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
