package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// List ordenado por nombre ascendente.
	List(limit, offset int) ([]*entity.Customer, error)
	// Search busca por nombre, email o teléfono.
	Search(query string, limit, offset int) ([]*entity.Customer, error)
}
