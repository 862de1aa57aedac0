package repository

import "github.com/jhoicas/saep-api/internal/domain/entity"

// ActivityLogRepository define el puerto de persistencia para ActivityLog (DIP).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	GetByID(id string) (*entity.ActivityLog, error)
	Update(log *entity.ActivityLog) error
	List(limit, offset int) ([]*entity.ActivityLog, error)
}
