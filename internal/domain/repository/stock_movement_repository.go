package repository

import "github.com/jhoicas/saep-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para StockMovement.
// El libro mayor es append-only: no existen Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List lista movimientos; productID vacío lista todos.
	List(productID string, limit, offset int) ([]*entity.StockMovement, error)
	// SumQuantityByType suma las cantidades de los movimientos del producto
	// con el tipo dado. Sin movimientos devuelve 0, no error.
	SumQuantityByType(productID, movementType string) (int64, error)
}
