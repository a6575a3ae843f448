package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de persistencia,
// pasando repositorios atados a esa transacción. Garantiza atomicidad entre
// la mutación de stock y el registro del movimiento en el libro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
