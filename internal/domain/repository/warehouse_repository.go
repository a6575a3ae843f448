package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(includeInactive bool, limit, offset int) ([]*entity.Warehouse, error)
}
