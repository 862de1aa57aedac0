package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/saep-api/internal/application/dto"
	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock actual nunca se
// edita por aquí: cada respuesta lo recalcula desde el libro de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movementRepo repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movementRepo: movementRepo}
}

// Create crea un nuevo producto propiedad del usuario autenticado.
// El SKU debe ser único; el mínimo de stock no puede ser negativo.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.MinimumStock < 0 {
		return nil, domain.NewValidationError("minimum_stock", "no puede ser negativo")
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		UserID:       userID,
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		MinimumStock: in.MinimumStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto por ID con su stock actual calculado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product)
}

// Update actualiza un producto. El stock no se toca aquí (se maneja vía movimientos).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		existing, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.NewValidationError("minimum_stock", "no puede ser negativo")
		}
		product.MinimumStock = *in.MinimumStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// Search lista productos filtrando por nombre, descripción o SKU.
// term vacío lista todo.
func (uc *ProductUseCase) Search(term string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.Search(term, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// toResponse arma la respuesta con el stock actual agregado desde el libro.
func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	inbound, err := uc.movementRepo.SumQuantityByType(p.ID, entity.MovementTypeInbound)
	if err != nil {
		return nil, err
	}
	outbound, err := uc.movementRepo.SumQuantityByType(p.ID, entity.MovementTypeOutbound)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		MinimumStock: p.MinimumStock,
		CurrentStock: inbound - outbound,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}
