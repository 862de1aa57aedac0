package dto

import "time"

// RecordMovementRequest body para POST /api/movements. Type es "E" (entrada)
// o "S" (salida); la cantidad debe ser un entero positivo (lo valida el core).
// MovedAt es opcional: si falta, el servidor asigna la hora actual.
type RecordMovementRequest struct {
	ProductID   string     `json:"product_id" validate:"required"`
	WarehouseID string     `json:"warehouse_id" validate:"required"`
	ClientID    string     `json:"client_id"`
	Quantity    int64      `json:"quantity"`
	Type        string     `json:"type" validate:"required"`
	MovedAt     *time.Time `json:"moved_at"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	ClientID    string    `json:"client_id,omitempty"`
	Quantity    int64     `json:"quantity"`
	Type        string    `json:"type"`
	MovedAt     time.Time `json:"moved_at"`
}

// RecordMovementResponse movimiento creado más el estado de stock resultante.
type RecordMovementResponse struct {
	MovementResponse
	CurrentStock int64 `json:"current_stock"`
	MinimumStock int64 `json:"minimum_stock"`
	BelowMinimum bool  `json:"below_minimum"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
