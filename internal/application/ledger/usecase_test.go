package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: store en memoria con el catálogo de demostración.
//
// Producto "1" (Aceite de Motor 5W-30): 5 unidades en la bodega "1".
// Producto "4" (Bujías NGK): 30 en la bodega "1" y 20 en la "2".
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	ledgerUC *ledger.UseCase
	stockUC  *inventory.StockUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	txRunner := memory.NewTxRunner(store)
	return &fixture{
		store:    store,
		ledgerUC: ledger.NewUseCase(txRunner, store.Movements()),
		stockUC:  inventory.NewStockUseCase(txRunner, store.Products(), store.Warehouses(), store.Suppliers()),
	}
}

// registerEntry registra una entrada y devuelve el movimiento anexado.
func (f *fixture) registerEntry(t *testing.T, productID, warehouseID string, qty int64) *entity.StockMovement {
	t.Helper()
	mov, err := f.stockUC.RegisterEntry(context.Background(), inventory.EntryInput{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	return mov
}

func (f *fixture) warehouseQty(t *testing.T, productID, warehouseID string) int64 {
	t.Helper()
	stock, err := f.store.Stocks().Get(productID, warehouseID)
	require.NoError(t, err)
	return stock.Quantity
}

func (f *fixture) totalStock(t *testing.T, productID string) int64 {
	t.Helper()
	p, err := f.store.Products().GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Corrección compensatoria
// ──────────────────────────────────────────────────────────────────────────────

// Entrada de 50 con stock previo 5: la corrección niega la cantidad,
// intercambia los snapshots y enlaza ambos movimientos.
func TestCorrect_RevierteEntrada(t *testing.T) {
	f := newFixture(t)

	original := f.registerEntry(t, "1", "1", 50)
	require.EqualValues(t, 5, original.PreviousStock)
	require.EqualValues(t, 55, original.NewStock)
	require.EqualValues(t, 55, f.warehouseQty(t, "1", "1"))

	correction, err := f.ledgerUC.Correct(context.Background(), original.ID, "miscount", "admin")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeCorrection, correction.Type)
	assert.EqualValues(t, -50, correction.Quantity)
	assert.EqualValues(t, 55, correction.PreviousStock)
	assert.EqualValues(t, 5, correction.NewStock)
	assert.Equal(t, original.ID, correction.CorrectionOf)
	assert.Equal(t, "Corrección: miscount", correction.Notes)

	// El original queda enlazado a su corrección, sin más cambios.
	stored, err := f.ledgerUC.GetByID(context.Background(), original.ID)
	require.NoError(t, err)
	assert.Equal(t, correction.ID, stored.CorrectedBy)

	// El stock de la bodega vuelve al estado previo a la entrada.
	assert.EqualValues(t, 5, f.warehouseQty(t, "1", "1"))
	assert.EqualValues(t, 5, f.totalStock(t, "1"))
}

// Corregir una corrección se rechaza siempre.
func TestCorrect_CorreccionNoEsCorregible(t *testing.T) {
	f := newFixture(t)

	original := f.registerEntry(t, "1", "1", 50)
	correction, err := f.ledgerUC.Correct(context.Background(), original.ID, "miscount", "admin")
	require.NoError(t, err)

	_, err = f.ledgerUC.Correct(context.Background(), correction.ID, "intento", "admin")
	assert.ErrorIs(t, err, domain.ErrCorrectionTarget)
}

// Un movimiento admite exactamente una corrección.
func TestCorrect_SegundaCorreccionRechazada(t *testing.T) {
	f := newFixture(t)

	original := f.registerEntry(t, "1", "1", 50)
	_, err := f.ledgerUC.Correct(context.Background(), original.ID, "miscount", "admin")
	require.NoError(t, err)

	_, err = f.ledgerUC.Correct(context.Background(), original.ID, "otra vez", "admin")
	assert.ErrorIs(t, err, domain.ErrAlreadyCorrected)

	// La corrección fallida no tocó el stock.
	assert.EqualValues(t, 5, f.warehouseQty(t, "1", "1"))
}

func TestCorrect_OriginalInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledgerUC.Correct(context.Background(), "no-existe", "notas", "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La corrección de una salida devuelve el stock: la salida guarda cantidad
// negativa, así que la corrección queda positiva.
func TestCorrect_RevierteSalida(t *testing.T) {
	f := newFixture(t)

	exit, err := f.stockUC.RegisterExit(context.Background(), inventory.ExitInput{
		ProductID:   "4",
		WarehouseID: "1",
		Quantity:    10,
		ExitReason:  entity.ExitReasonSale,
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	require.EqualValues(t, -10, exit.Quantity)
	require.EqualValues(t, 20, f.warehouseQty(t, "4", "1"))

	correction, err := f.ledgerUC.Correct(context.Background(), exit.ID, "venta anulada", "admin")
	require.NoError(t, err)

	assert.EqualValues(t, 10, correction.Quantity)
	assert.EqualValues(t, 20, correction.PreviousStock)
	assert.EqualValues(t, 30, correction.NewStock)
	assert.EqualValues(t, 30, f.warehouseQty(t, "4", "1"))
	assert.EqualValues(t, 50, f.totalStock(t, "4"))
}

// La corrección de un traslado revierte ambas bodegas y conserva el total.
func TestCorrect_RevierteTraslado(t *testing.T) {
	f := newFixture(t)

	transfer, err := f.stockUC.RegisterTransfer(context.Background(), inventory.TransferInput{
		ProductID:       "4",
		FromWarehouseID: "1",
		ToWarehouseID:   "2",
		Quantity:        10,
		CreatedBy:       "admin",
	})
	require.NoError(t, err)
	require.EqualValues(t, 20, f.warehouseQty(t, "4", "1"))
	require.EqualValues(t, 30, f.warehouseQty(t, "4", "2"))

	_, err = f.ledgerUC.Correct(context.Background(), transfer.ID, "bodega equivocada", "admin")
	require.NoError(t, err)

	assert.EqualValues(t, 30, f.warehouseQty(t, "4", "1"))
	assert.EqualValues(t, 20, f.warehouseQty(t, "4", "2"))
	assert.EqualValues(t, 50, f.totalStock(t, "4"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Inmutabilidad y listados
// ──────────────────────────────────────────────────────────────────────────────

// Tras corregir, los campos del original no cambian: solo se enlaza CorrectedBy.
func TestCorrect_OriginalInmutable(t *testing.T) {
	f := newFixture(t)

	original := f.registerEntry(t, "1", "1", 50)
	correction, err := f.ledgerUC.Correct(context.Background(), original.ID, "miscount", "admin")
	require.NoError(t, err)

	stored, err := f.ledgerUC.GetByID(context.Background(), original.ID)
	require.NoError(t, err)

	assert.Equal(t, original.ID, stored.ID)
	assert.Equal(t, original.Type, stored.Type)
	assert.Equal(t, original.Quantity, stored.Quantity)
	assert.Equal(t, original.PreviousStock, stored.PreviousStock)
	assert.Equal(t, original.NewStock, stored.NewStock)
	assert.Equal(t, original.CorrectionOf, stored.CorrectionOf)
	assert.True(t, original.CreatedAt.Equal(stored.CreatedAt))
	assert.Equal(t, correction.ID, stored.CorrectedBy)
}

// Los listados devuelven del más reciente al más antiguo.
func TestListAll_MasRecientesPrimero(t *testing.T) {
	f := newFixture(t)

	first := f.registerEntry(t, "1", "1", 5)
	second := f.registerEntry(t, "2", "1", 3)
	third := f.registerEntry(t, "4", "2", 7)

	movements, err := f.ledgerUC.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 3)

	assert.Equal(t, third.ID, movements[0].ID)
	assert.Equal(t, second.ID, movements[1].ID)
	assert.Equal(t, first.ID, movements[2].ID)
}

func TestListForProduct_FiltraPorProducto(t *testing.T) {
	f := newFixture(t)

	f.registerEntry(t, "1", "1", 5)
	target := f.registerEntry(t, "2", "1", 3)
	f.registerEntry(t, "4", "2", 7)

	movements, err := f.ledgerUC.ListForProduct(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, target.ID, movements[0].ID)
}

func TestGetByID_Inexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledgerUC.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Record rechaza tipos inválidos y campos obligatorios vacíos.
func TestRecord_Validacion(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledgerUC.Record(context.Background(), ledger.RecordInput{
		ProductID:   "1",
		WarehouseID: "1",
		Type:        "ajuste",
		Quantity:    1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.ledgerUC.Record(context.Background(), ledger.RecordInput{
		WarehouseID: "1",
		Type:        entity.MovementTypeEntry,
		Quantity:    1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
