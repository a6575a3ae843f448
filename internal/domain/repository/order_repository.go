package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de compra/venta.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Delete(id string) error
	// List ordenado del más reciente al más antiguo. type y status filtran
	// si no están vacíos.
	List(orderType, status string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
