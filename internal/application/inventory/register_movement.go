package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/almacen-api/internal/domain/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// EntryInput entrada de mercancía a una bodega.
type EntryInput struct {
	ProductID   string
	WarehouseID string
	Quantity    int64 // unidades que ingresan, > 0
	SupplierID  string
	UnitCost    *decimal.Decimal // si viene, actualiza el costo promedio ponderado
	Notes       string
	CreatedBy   string
}

// ExitInput salida de mercancía de una bodega.
type ExitInput struct {
	ProductID   string
	WarehouseID string
	Quantity    int64 // unidades que salen, > 0
	ExitReason  string
	Notes       string
	CreatedBy   string
}

// TransferInput traslado entre bodegas.
type TransferInput struct {
	ProductID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        int64 // > 0
	Notes           string
	CreatedBy       string
}

// RegisterEntry suma la cantidad al stock de la bodega, recalcula el total y
// anexa el movimiento `entry` al libro con los snapshots previo/posterior,
// todo en una transacción. Si viene costo unitario, actualiza el costo
// promedio ponderado del producto.
func (uc *StockUseCase) RegisterEntry(ctx context.Context, in EntryInput) (*entity.StockMovement, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.requireProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.requireWarehouse(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	var supplierName string
	if in.SupplierID != "" {
		supplier, err := uc.suppliers.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supplierName = supplier.Name
	}

	var mov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		stock, err := stockRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		previous := stock.Quantity
		stock.Quantity += in.Quantity
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		if in.UnitCost != nil {
			// El promedio pondera sobre el total del producto, no solo la bodega.
			newCost := domaininv.AverageCost(product.Stock, product.Cost, in.Quantity, *in.UnitCost)
			if err := productRepo.UpdateCost(in.ProductID, newCost, now); err != nil {
				return err
			}
		}
		if err := recomputeTotal(stockRepo, productRepo, in.ProductID, now); err != nil {
			return err
		}
		mov = &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			ProductName:   product.Name,
			Type:          entity.MovementTypeEntry,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      previous + in.Quantity,
			WarehouseID:   warehouse.ID,
			WarehouseName: warehouse.Name,
			SupplierID:    in.SupplierID,
			SupplierName:  supplierName,
			Notes:         in.Notes,
			CreatedAt:     now,
			CreatedBy:     in.CreatedBy,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterExit resta la cantidad del stock de la bodega y anexa el movimiento
// `exit` al libro (cantidad negativa), en una transacción. Falla con
// ErrInsufficientStock si la bodega no alcanza.
func (uc *StockUseCase) RegisterExit(ctx context.Context, in ExitInput) (*entity.StockMovement, error) {
	if in.Quantity <= 0 || !entity.ValidExitReason(in.ExitReason) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.requireProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.requireWarehouse(in.WarehouseID)
	if err != nil {
		return nil, err
	}

	var mov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		stock, err := stockRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if stock.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		previous := stock.Quantity
		stock.Quantity -= in.Quantity
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		if err := recomputeTotal(stockRepo, productRepo, in.ProductID, now); err != nil {
			return err
		}
		mov = &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			ProductName:   product.Name,
			Type:          entity.MovementTypeExit,
			Quantity:      -in.Quantity,
			PreviousStock: previous,
			NewStock:      previous - in.Quantity,
			WarehouseID:   warehouse.ID,
			WarehouseName: warehouse.Name,
			ExitReason:    in.ExitReason,
			Notes:         in.Notes,
			CreatedAt:     now,
			CreatedBy:     in.CreatedBy,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterTransfer traslada stock entre bodegas y anexa un único movimiento
// `transfer` al libro, con la bodega origen como principal y la destino en
// los campos de destino. Los snapshots previo/posterior son los de la bodega
// origen.
func (uc *StockUseCase) RegisterTransfer(ctx context.Context, in TransferInput) (*entity.StockMovement, error) {
	if in.Quantity <= 0 || in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.requireProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	from, err := uc.requireWarehouse(in.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	to, err := uc.requireWarehouse(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}

	var mov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		origin, err := stockRepo.GetForUpdate(in.ProductID, in.FromWarehouseID)
		if err != nil {
			return err
		}
		previous := origin.Quantity
		if err := transferLocked(stockRepo, productRepo, in.ProductID, in.FromWarehouseID, in.ToWarehouseID, in.Quantity, now); err != nil {
			return err
		}
		mov = &entity.StockMovement{
			ID:                       uuid.New().String(),
			ProductID:                product.ID,
			ProductName:              product.Name,
			Type:                     entity.MovementTypeTransfer,
			Quantity:                 in.Quantity,
			PreviousStock:            previous,
			NewStock:                 previous - in.Quantity,
			WarehouseID:              from.ID,
			WarehouseName:            from.Name,
			DestinationWarehouseID:   to.ID,
			DestinationWarehouseName: to.Name,
			Notes:                    in.Notes,
			CreatedAt:                now,
			CreatedBy:                in.CreatedBy,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterFromRequest adapta el request HTTP al registro según el tipo.
// Usar desde handlers que reciben dto.RegisterMovementRequest.
func (uc *StockUseCase) RegisterFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*entity.StockMovement, error) {
	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = "admin"
	}
	switch in.Type {
	case entity.MovementTypeEntry:
		return uc.RegisterEntry(ctx, EntryInput{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.Quantity,
			SupplierID:  in.SupplierID,
			UnitCost:    in.UnitCost,
			Notes:       in.Notes,
			CreatedBy:   createdBy,
		})
	case entity.MovementTypeExit:
		return uc.RegisterExit(ctx, ExitInput{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.Quantity,
			ExitReason:  in.ExitReason,
			Notes:       in.Notes,
			CreatedBy:   createdBy,
		})
	case entity.MovementTypeTransfer:
		return uc.RegisterTransfer(ctx, TransferInput{
			ProductID:       in.ProductID,
			FromWarehouseID: in.FromWarehouseID,
			ToWarehouseID:   in.ToWarehouseID,
			Quantity:        in.Quantity,
			Notes:           in.Notes,
			CreatedBy:       createdBy,
		})
	default:
		// Las correcciones no se registran directamente: nacen de Correct.
		return nil, domain.ErrInvalidInput
	}
}
