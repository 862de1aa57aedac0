package entity

import "time"

// Tipos de movimiento de stock (códigos de un carácter en la API y la BD).
const (
	MovementTypeInbound  = "E" // entrada
	MovementTypeOutbound = "S" // salida
)

// ValidMovementType indica si el código de tipo es reconocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeInbound || t == MovementTypeOutbound
}

// StockMovement representa un movimiento de stock. Es un registro de libro
// mayor: una vez persistido no se actualiza ni se borra.
type StockMovement struct {
	ID          string
	ProductID   string
	WarehouseID string
	ClientID    string // vacío si el movimiento no tiene cliente asociado
	Quantity    int64  // entero positivo
	Type        string // E o S
	MovedAt     time.Time
}
