package repository

import "github.com/jhoicas/saep-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Search busca por nombre, descripción o SKU con término ya normalizado
// (sin acentos); term vacío equivale a listar.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	Search(term string, limit, offset int) ([]*entity.Product, error)
}
