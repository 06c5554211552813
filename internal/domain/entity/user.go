package entity

import "time"

// User representa un usuario del sistema (actor de los movimientos de stock).
type User struct {
	ID           string
	Username     string // único
	Email        string // único, formato válido
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
