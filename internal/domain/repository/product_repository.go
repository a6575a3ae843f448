package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetBySKU devuelve nil sin error si el SKU no existe.
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(includeArchived bool, limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre, SKU o código de barras, sin distinguir
	// mayúsculas ni acentos.
	Search(query string, includeArchived bool, limit, offset int) ([]*entity.Product, error)
	// ListBelowMinStock productos activos con stock total < MinStock.
	ListBelowMinStock() ([]*entity.Product, error)
	// UpdateTotalStock materializa el stock total (suma por bodegas).
	UpdateTotalStock(id string, stock int64, updatedAt time.Time) error
	// UpdateCost actualiza el costo promedio ponderado tras una entrada.
	UpdateCost(id string, cost decimal.Decimal, updatedAt time.Time) error
}
