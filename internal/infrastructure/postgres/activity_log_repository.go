package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste un registro de actividad.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.IsActive, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *ActivityLogRepo) GetByID(id string) (*entity.ActivityLog, error) {
	query := `
		SELECT id, is_active, created_at, updated_at
		FROM activity_logs WHERE id = $1`
	var l entity.ActivityLog
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity log: %w", err)
	}
	return &l, nil
}

// Update actualiza la bandera is_active (y updated_at) de un registro.
func (r *ActivityLogRepo) Update(log *entity.ActivityLog) error {
	query := `
		UPDATE activity_logs SET is_active = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, log.ID, log.IsActive, log.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update activity log: %w", err)
	}
	return nil
}

// List lista registros con paginación, los más recientes primero.
func (r *ActivityLogRepo) List(limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, is_active, created_at, updated_at
		FROM activity_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
