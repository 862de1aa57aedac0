package entity

import "time"

// Product representa un producto identificado por SKU. El stock actual no se
// guarda aquí: se recalcula siempre desde los movimientos (ver stock.Ledger).
// MinimumStock es el umbral configurado bajo el cual se marca alerta.
type Product struct {
	ID           string
	UserID       string // usuario que creó el producto
	SKU          string // código único
	Name         string
	Description  string
	MinimumStock int64 // no negativo, 0 por defecto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
