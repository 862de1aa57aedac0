package entity

import "time"

// User representa un usuario del sistema. Solo los usuarios activos
// pueden operar sobre los recursos protegidos; IsStaff habilita el acceso
// administrativo (seed, operaciones futuras de backoffice).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
