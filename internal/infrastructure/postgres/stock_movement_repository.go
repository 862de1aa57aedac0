package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL del libro de movimientos.
// Solo inserta y lee: el esquema no recibe UPDATE ni DELETE para esta tabla.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock. client_id vacío se guarda como NULL.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, warehouse_id, client_id, quantity, type, moved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	clientID := (*string)(nil)
	if movement.ClientID != "" {
		clientID = &movement.ClientID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.WarehouseID, clientID,
		movement.Quantity, movement.Type, movement.MovedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, warehouse_id, client_id, quantity, type, moved_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var clientID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.WarehouseID, &clientID, &m.Quantity, &m.Type, &m.MovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if clientID != nil {
		m.ClientID = *clientID
	}
	return &m, nil
}

// List lista movimientos, opcionalmente filtrados por producto, los más recientes primero.
func (r *StockMovementRepo) List(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, warehouse_id, client_id, quantity, type, moved_at
		FROM stock_movements`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" WHERE product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY moved_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var clientID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.WarehouseID, &clientID,
			&m.Quantity, &m.Type, &m.MovedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if clientID != nil {
			m.ClientID = *clientID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumQuantityByType agrega las cantidades de un producto por tipo de movimiento.
// COALESCE garantiza 0 (no NULL) cuando el producto no tiene movimientos.
func (r *StockMovementRepo) SumQuantityByType(productID, movementType string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_movements WHERE product_id = $1 AND type = $2`
	var total int64
	err := r.q.QueryRow(context.Background(), query, productID, movementType).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return total, nil
}
