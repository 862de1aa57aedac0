package dto

import "time"

// ToggleLogRequest body para activar/desactivar un log. Puntero para
// distinguir false de campo ausente.
type ToggleLogRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// LogResponse salida de un registro de actividad.
type LogResponse struct {
	ID        string    `json:"id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LogListResponse lista paginada de logs.
type LogListResponse struct {
	Items []LogResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
