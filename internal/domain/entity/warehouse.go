package entity

import "time"

// Warehouse representa una bodega o sector físico donde entran y salen productos.
type Warehouse struct {
	ID          string
	Sector      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
