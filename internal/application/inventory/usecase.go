package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockUseCase mantiene el stock por bodega de cada producto y la invariante
// de totalización: el stock total del producto siempre es la suma de las
// cantidades por bodega, recalculada tras cada mutación confirmada.
type StockUseCase struct {
	txRunner   TxRunner
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	suppliers  repository.SupplierRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	suppliers repository.SupplierRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:   txRunner,
		products:   products,
		warehouses: warehouses,
		suppliers:  suppliers,
	}
}

// AdjustWarehouseStock suma delta (con signo) a la cantidad del producto en
// la bodega, creando la fila en cero si la bodega aún no se rastrea, y
// recalcula el total. Primitiva de bajo nivel: no registra movimiento en el
// libro y no impone cota inferior, por lo que admite cantidades negativas.
func (uc *StockUseCase) AdjustWarehouseStock(ctx context.Context, productID, warehouseID string, delta int64) (*entity.Product, error) {
	if _, err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	if _, err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		stock, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return err
		}
		stock.Quantity += delta
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		return recomputeTotal(stockRepo, productRepo, productID, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.products.GetByID(productID)
}

// Transfer mueve quantity unidades del producto de una bodega a otra de forma
// atómica. Falla con ErrInsufficientStock si la bodega origen no alcanza; en
// ese caso ninguna de las dos bodegas cambia. El total del producto queda
// igual, pero se recalcula de todos modos para sostener la invariante.
func (uc *StockUseCase) Transfer(ctx context.Context, productID, fromWarehouseID, toWarehouseID string, quantity int64) (*entity.Product, error) {
	if quantity <= 0 || fromWarehouseID == toWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.requireProduct(productID); err != nil {
		return nil, err
	}
	if _, err := uc.requireWarehouse(fromWarehouseID); err != nil {
		return nil, err
	}
	if _, err := uc.requireWarehouse(toWarehouseID); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		return transferLocked(stockRepo, productRepo, productID, fromWarehouseID, toWarehouseID, quantity, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.products.GetByID(productID)
}

// transferLocked ejecuta la mecánica de traslado dentro de una transacción ya
// abierta: bloquea origen, verifica suficiencia, resta y suma.
func transferLocked(
	stockRepo repository.ProductStockRepository,
	productRepo repository.ProductRepository,
	productID, fromWarehouseID, toWarehouseID string,
	quantity int64,
	now time.Time,
) error {
	origin, err := stockRepo.GetForUpdate(productID, fromWarehouseID)
	if err != nil {
		return err
	}
	if origin.Quantity < quantity {
		return domain.ErrInsufficientStock
	}
	dest, err := stockRepo.GetForUpdate(productID, toWarehouseID)
	if err != nil {
		return err
	}
	origin.Quantity -= quantity
	dest.Quantity += quantity
	origin.UpdatedAt = now
	dest.UpdatedAt = now
	if err := stockRepo.Upsert(origin); err != nil {
		return err
	}
	if err := stockRepo.Upsert(dest); err != nil {
		return err
	}
	return recomputeTotal(stockRepo, productRepo, productID, now)
}

func (uc *StockUseCase) requireProduct(id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *StockUseCase) requireWarehouse(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

func recomputeTotal(
	stockRepo repository.ProductStockRepository,
	productRepo repository.ProductRepository,
	productID string,
	now time.Time,
) error {
	total, err := stockRepo.SumByProduct(productID)
	if err != nil {
		return err
	}
	return productRepo.UpdateTotalStock(productID, total, now)
}
