package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(includeInactive bool, limit, offset int) ([]*entity.Supplier, error)
}
