package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductStockRepository define el puerto para el stock por producto+bodega.
// Usado dentro de transacciones para mantener la invariante
// stock total == suma de cantidades por bodega.
type ProductStockRepository interface {
	// Get devuelve la fila o una fila en cero si la bodega aún no se rastrea.
	Get(productID, warehouseID string) (*entity.ProductStock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.ProductStock, error)
	Upsert(stock *entity.ProductStock) error
	ListByProduct(productID string) ([]*entity.ProductStock, error)
	// SumByProduct suma las cantidades de todas las bodegas del producto.
	SumByProduct(productID string) (int64, error)
}
