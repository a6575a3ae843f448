package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UseCase expone el libro de movimientos: registrar eventos, consultarlos y
// revertirlos mediante correcciones compensatorias. Nunca se edita ni borra
// un movimiento existente; la única mutación permitida es el enlace write-once
// CorrectedBy al corregirlo.
type UseCase struct {
	txRunner  TxRunner
	movements repository.StockMovementRepository
}

// NewUseCase construye el caso de uso. movements se usa para lecturas fuera
// de transacción; las correcciones corren dentro de txRunner.
func NewUseCase(txRunner TxRunner, movements repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movements: movements}
}

// RecordInput entrada para registrar un movimiento. ID, CreatedAt y
// CorrectedBy los asigna el libro; el resto viene del caller, que es
// responsable de la integridad referencial (producto, bodega, proveedor).
type RecordInput struct {
	ProductID     string
	ProductName   string
	Type          string
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	WarehouseID   string
	WarehouseName string

	DestinationWarehouseID   string
	DestinationWarehouseName string

	SupplierID   string
	SupplierName string
	ExitReason   string

	Notes        string
	CorrectionOf string
	CreatedBy    string
}

// Record asigna identificador y timestamp, anexa el evento al libro y
// devuelve el registro almacenado.
func (uc *UseCase) Record(ctx context.Context, in RecordInput) (*entity.StockMovement, error) {
	if !entity.ValidMovementType(in.Type) || in.ProductID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	mov := newMovement(in, time.Now())
	if err := uc.movements.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// ListAll devuelve el libro completo, del más reciente al más antiguo.
func (uc *UseCase) ListAll(ctx context.Context) ([]*entity.StockMovement, error) {
	return uc.movements.ListAll()
}

// ListForProduct devuelve los movimientos de un producto, más recientes primero.
func (uc *UseCase) ListForProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return uc.movements.ListByProduct(productID)
}

// GetByID busca un movimiento puntual.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	mov, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// Correct crea el evento compensatorio que revierte al original: cantidad
// negada, snapshots de stock intercambiados y misma identidad de producto y
// bodega. En la misma transacción enlaza CorrectedBy en el original, anexa la
// corrección y deshace el efecto del original sobre el stock de bodega, de
// modo que ningún lector observe un estado parcial.
//
// Rechaza con ErrNotFound si el original no existe, ErrAlreadyCorrected si ya
// tiene corrección enlazada y ErrCorrectionTarget si el original es a su vez
// una corrección.
func (uc *UseCase) Correct(ctx context.Context, originalID, notes, actor string) (*entity.StockMovement, error) {
	var correction *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.ProductStockRepository,
		productRepo repository.ProductRepository,
	) error {
		original, err := movRepo.GetByID(originalID)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.ErrNotFound
		}
		if original.IsCorrection() {
			return domain.ErrCorrectionTarget
		}
		if original.IsCorrected() {
			return domain.ErrAlreadyCorrected
		}

		now := time.Now()
		correction = newMovement(RecordInput{
			ProductID:                original.ProductID,
			ProductName:              original.ProductName,
			Type:                     entity.MovementTypeCorrection,
			Quantity:                 -original.Quantity,
			PreviousStock:            original.NewStock,
			NewStock:                 original.PreviousStock,
			WarehouseID:              original.WarehouseID,
			WarehouseName:            original.WarehouseName,
			DestinationWarehouseID:   original.DestinationWarehouseID,
			DestinationWarehouseName: original.DestinationWarehouseName,
			Notes:                    "Corrección: " + notes,
			CorrectionOf:             original.ID,
			CreatedBy:                actor,
		}, now)

		if err := revertStockEffect(stockRepo, productRepo, original, now); err != nil {
			return err
		}
		if err := movRepo.MarkCorrected(original.ID, correction.ID); err != nil {
			return err
		}
		return movRepo.Create(correction)
	})
	if err != nil {
		return nil, err
	}
	return correction, nil
}

func newMovement(in RecordInput, now time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:                       uuid.New().String(),
		ProductID:                in.ProductID,
		ProductName:              in.ProductName,
		Type:                     in.Type,
		Quantity:                 in.Quantity,
		PreviousStock:            in.PreviousStock,
		NewStock:                 in.NewStock,
		WarehouseID:              in.WarehouseID,
		WarehouseName:            in.WarehouseName,
		DestinationWarehouseID:   in.DestinationWarehouseID,
		DestinationWarehouseName: in.DestinationWarehouseName,
		SupplierID:               in.SupplierID,
		SupplierName:             in.SupplierName,
		ExitReason:               in.ExitReason,
		Notes:                    in.Notes,
		CorrectionOf:             in.CorrectionOf,
		CreatedAt:                now,
		CreatedBy:                in.CreatedBy,
	}
}

// revertStockEffect aplica el delta inverso del original al stock de bodega.
// Entradas restan lo que sumaron, salidas devuelven lo que restaron (la
// cantidad de una salida se guarda negativa, así que el inverso es -Quantity
// en ambos casos). Un transfer se revierte en ambas bodegas. Sin cota
// inferior: la corrección procede aunque deje stock negativo, porque el libro
// debe poder revertir siempre.
func revertStockEffect(
	stockRepo repository.ProductStockRepository,
	productRepo repository.ProductRepository,
	original *entity.StockMovement,
	now time.Time,
) error {
	if original.Type == entity.MovementTypeTransfer {
		if err := applyDelta(stockRepo, original.ProductID, original.DestinationWarehouseID, -original.Quantity, now); err != nil {
			return err
		}
		if err := applyDelta(stockRepo, original.ProductID, original.WarehouseID, original.Quantity, now); err != nil {
			return err
		}
	} else {
		if err := applyDelta(stockRepo, original.ProductID, original.WarehouseID, -original.Quantity, now); err != nil {
			return err
		}
	}
	return recomputeTotal(stockRepo, productRepo, original.ProductID, now)
}

func applyDelta(stockRepo repository.ProductStockRepository, productID, warehouseID string, delta int64, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	stock.Quantity += delta
	stock.UpdatedAt = now
	return stockRepo.Upsert(stock)
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
