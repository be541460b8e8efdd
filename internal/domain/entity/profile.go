package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Profile representa un usuario autenticado del sistema.
// Se crea junto con el registro de la cuenta (role=staff, is_active=true por defecto)
// y nunca se borra vía API; solo un admin cambia role/is_active, el propio usuario su nombre.
type Profile struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff
	IsActive     bool   // gobierna TODAS las operaciones de escritura, independiente del rol
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
