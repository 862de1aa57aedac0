package repository

import "github.com/jhoicas/saep-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
// No hay Delete: el borrado de clientes está prohibido por la API.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
}
