package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: catálogo de demostración en memoria.
//
// Producto "1" (Aceite de Motor 5W-30, costo 32.00): 5 en la bodega "1".
// Producto "3" (Pastillas de Freno): 3 en la bodega "1", nada en la "2".
// Producto "4" (Bujías NGK): 30 en la bodega "1" y 20 en la "2".
// ──────────────────────────────────────────────────────────────────────────────

func newStockUseCase(t *testing.T) (*inventory.StockUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	uc := inventory.NewStockUseCase(memory.NewTxRunner(store), store.Products(), store.Warehouses(), store.Suppliers())
	return uc, store
}

func warehouseQty(t *testing.T, store *memory.Store, productID, warehouseID string) int64 {
	t.Helper()
	stock, err := store.Stocks().Get(productID, warehouseID)
	require.NoError(t, err)
	return stock.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes y traslados de bajo nivel
// ──────────────────────────────────────────────────────────────────────────────

// El total del producto siempre es la suma de sus bodegas, tras cualquier
// secuencia de ajustes y traslados.
func TestAdjustWarehouseStock_TotalEsSumaDeBodegas(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()

	_, err := uc.AdjustWarehouseStock(ctx, "4", "1", 7)
	require.NoError(t, err)
	_, err = uc.AdjustWarehouseStock(ctx, "4", "2", -5)
	require.NoError(t, err)
	product, err := uc.Transfer(ctx, "4", "1", "2", 12)
	require.NoError(t, err)

	sum, err := store.Stocks().SumByProduct("4")
	require.NoError(t, err)
	assert.Equal(t, sum, product.Stock)
	assert.EqualValues(t, 52, product.Stock) // 50 + 7 - 5
	assert.EqualValues(t, 25, warehouseQty(t, store, "4", "1"))
	assert.EqualValues(t, 27, warehouseQty(t, store, "4", "2"))
}

// El ajuste es una primitiva sin cota: admite dejar la bodega en negativo.
func TestAdjustWarehouseStock_PermiteNegativo(t *testing.T) {
	uc, store := newStockUseCase(t)

	product, err := uc.AdjustWarehouseStock(context.Background(), "1", "1", -8)
	require.NoError(t, err)

	assert.EqualValues(t, -3, warehouseQty(t, store, "1", "1"))
	assert.EqualValues(t, -3, product.Stock)
}

func TestAdjustWarehouseStock_ProductoInexistente(t *testing.T) {
	uc, _ := newStockUseCase(t)

	_, err := uc.AdjustWarehouseStock(context.Background(), "999", "1", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Trasladar a una bodega donde el producto aún no se rastrea crea la fila:
// el total del producto no cambia.
func TestTransfer_CreaFilaDestino(t *testing.T) {
	uc, store := newStockUseCase(t)

	product, err := uc.Transfer(context.Background(), "3", "1", "2", 3)
	require.NoError(t, err)

	assert.EqualValues(t, 0, warehouseQty(t, store, "3", "1"))
	assert.EqualValues(t, 3, warehouseQty(t, store, "3", "2"))
	assert.EqualValues(t, 3, product.Stock)
}

// Sin stock suficiente en el origen el traslado no toca ninguna bodega.
func TestTransfer_StockInsuficiente(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.Transfer(context.Background(), "3", "1", "2", 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 3, warehouseQty(t, store, "3", "1"))
	assert.EqualValues(t, 0, warehouseQty(t, store, "3", "2"))
}

func TestTransfer_Validacion(t *testing.T) {
	uc, _ := newStockUseCase(t)
	ctx := context.Background()

	_, err := uc.Transfer(ctx, "4", "1", "1", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "misma bodega origen y destino")

	_, err = uc.Transfer(ctx, "4", "1", "2", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva")

	_, err = uc.Transfer(ctx, "4", "1", "999", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound, "bodega destino inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_ActualizaStockYLibro(t *testing.T) {
	uc, store := newStockUseCase(t)

	mov, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{
		ProductID:   "1",
		WarehouseID: "1",
		Quantity:    50,
		SupplierID:  "2",
		Notes:       "reposición",
		CreatedBy:   "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.EqualValues(t, 50, mov.Quantity)
	assert.EqualValues(t, 5, mov.PreviousStock)
	assert.EqualValues(t, 55, mov.NewStock)
	assert.Equal(t, "Aceite de Motor 5W-30", mov.ProductName)
	assert.Equal(t, "Lubricantes del Norte", mov.SupplierName)
	assert.Equal(t, "Almacén Principal", mov.WarehouseName)

	assert.EqualValues(t, 55, warehouseQty(t, store, "1", "1"))

	// El movimiento quedó anexado al libro.
	stored, err := store.Movements().GetByID(mov.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

// Una entrada con costo unitario recalcula el costo promedio ponderado.
func TestRegisterEntry_CostoPromedioPonderado(t *testing.T) {
	uc, store := newStockUseCase(t)

	unitCost := decimal.RequireFromString("40.00")
	_, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{
		ProductID:   "1",
		WarehouseID: "1",
		Quantity:    15,
		UnitCost:    &unitCost,
		CreatedBy:   "admin",
	})
	require.NoError(t, err)

	product, err := store.Products().GetByID("1")
	require.NoError(t, err)
	// (5*32.00 + 15*40.00) / 20 = 38.00
	assert.True(t, product.Cost.Equal(decimal.RequireFromString("38")),
		"costo esperado 38, obtenido %s", product.Cost)
}

func TestRegisterEntry_ProveedorInexistente(t *testing.T) {
	uc, _ := newStockUseCase(t)

	_, err := uc.RegisterEntry(context.Background(), inventory.EntryInput{
		ProductID:   "1",
		WarehouseID: "1",
		Quantity:    5,
		SupplierID:  "999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La salida guarda cantidad negativa y respeta la suficiencia por bodega.
func TestRegisterExit_GuardaCantidadNegativa(t *testing.T) {
	uc, store := newStockUseCase(t)

	mov, err := uc.RegisterExit(context.Background(), inventory.ExitInput{
		ProductID:   "4",
		WarehouseID: "2",
		Quantity:    8,
		ExitReason:  entity.ExitReasonDamaged,
		CreatedBy:   "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeExit, mov.Type)
	assert.EqualValues(t, -8, mov.Quantity)
	assert.EqualValues(t, 20, mov.PreviousStock)
	assert.EqualValues(t, 12, mov.NewStock)
	assert.Equal(t, entity.ExitReasonDamaged, mov.ExitReason)
	assert.EqualValues(t, 12, warehouseQty(t, store, "4", "2"))
}

func TestRegisterExit_StockInsuficiente(t *testing.T) {
	uc, store := newStockUseCase(t)

	// Hay 50 en total pero solo 20 en la bodega "2": la suficiencia es por bodega.
	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{
		ProductID:   "4",
		WarehouseID: "2",
		Quantity:    25,
		ExitReason:  entity.ExitReasonSale,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada cambió: ni el stock ni el libro.
	assert.EqualValues(t, 20, warehouseQty(t, store, "4", "2"))
	movements, err := store.Movements().ListAll()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRegisterExit_MotivoInvalido(t *testing.T) {
	uc, _ := newStockUseCase(t)

	_, err := uc.RegisterExit(context.Background(), inventory.ExitInput{
		ProductID:   "4",
		WarehouseID: "1",
		Quantity:    1,
		ExitReason:  "regalo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El traslado anexa un único movimiento con origen como bodega principal y
// destino en los campos de destino; los snapshots son los del origen.
func TestRegisterTransfer_UnSoloMovimiento(t *testing.T) {
	uc, store := newStockUseCase(t)

	mov, err := uc.RegisterTransfer(context.Background(), inventory.TransferInput{
		ProductID:       "4",
		FromWarehouseID: "1",
		ToWarehouseID:   "2",
		Quantity:        10,
		CreatedBy:       "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeTransfer, mov.Type)
	assert.EqualValues(t, 10, mov.Quantity)
	assert.EqualValues(t, 30, mov.PreviousStock)
	assert.EqualValues(t, 20, mov.NewStock)
	assert.Equal(t, "1", mov.WarehouseID)
	assert.Equal(t, "2", mov.DestinationWarehouseID)
	assert.Equal(t, "Almacén Secundario", mov.DestinationWarehouseName)

	movements, err := store.Movements().ListAll()
	require.NoError(t, err)
	assert.Len(t, movements, 1)

	// El total del producto no cambia con un traslado.
	product, err := store.Products().GetByID("4")
	require.NoError(t, err)
	assert.EqualValues(t, 50, product.Stock)
}
