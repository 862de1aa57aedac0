package entity

import "time"

// ActivityLog es un registro de actividad que se activa/desactiva en lugar de
// borrarse (soft delete por bandera).
type ActivityLog struct {
	ID        string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
