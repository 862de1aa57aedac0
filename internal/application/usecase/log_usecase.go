package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/saep-api/internal/application/dto"
	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/domain/repository"
)

// LogUseCase casos de uso para registros de actividad. Los logs no se borran:
// se activan o desactivan con Toggle.
type LogUseCase struct {
	repo repository.ActivityLogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.ActivityLogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// Create crea un registro de actividad, activo por defecto.
func (uc *LogUseCase) Create() (*dto.LogResponse, error) {
	now := time.Now()
	log := &entity.ActivityLog{
		ID:        uuid.New().String(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(log); err != nil {
		return nil, err
	}
	return toLogResponse(log), nil
}

// GetByID obtiene un registro por ID.
func (uc *LogUseCase) GetByID(id string) (*dto.LogResponse, error) {
	log, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domain.ErrNotFound
	}
	return toLogResponse(log), nil
}

// Toggle activa o desactiva un registro (el reemplazo del borrado).
func (uc *LogUseCase) Toggle(id string, isActive bool) (*dto.LogResponse, error) {
	log, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domain.ErrNotFound
	}
	log.IsActive = isActive
	log.UpdatedAt = time.Now()
	if err := uc.repo.Update(log); err != nil {
		return nil, err
	}
	return toLogResponse(log), nil
}

// List lista registros con paginación.
func (uc *LogUseCase) List(limit, offset int) (*dto.LogListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLogResponse(l))
	}
	return &dto.LogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLogResponse(l *entity.ActivityLog) *dto.LogResponse {
	if l == nil {
		return nil
	}
	return &dto.LogResponse{
		ID:        l.ID,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
