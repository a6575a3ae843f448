package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/report"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
	router "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la app completa sobre el store en memoria con el catálogo
// de demostración, igual que lo hace main con STORAGE_DRIVER=memory.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore()
	store.Seed()
	txRunner := memory.NewTxRunner(store)

	stockUC := inventory.NewStockUseCase(txRunner, store.Products(), store.Warehouses(), store.Suppliers())
	ledgerUC := ledger.NewUseCase(txRunner, store.Movements())

	app := fiber.New()
	router.Router(app, router.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store.Products(), store.Stocks()),
		WarehouseUC: usecase.NewWarehouseUseCase(store.Warehouses()),
		SupplierUC:  usecase.NewSupplierUseCase(store.Suppliers()),
		CustomerUC:  usecase.NewCustomerUseCase(store.Customers()),
		OrderUC:     usecase.NewOrderUseCase(store.Orders(), store.Products(), store.Customers(), store.Suppliers()),
		StockUC:     stockUC,
		LedgerUC:    ledgerUC,
		ReportUC:    report.NewUseCase(store.Movements(), store.Products(), pdf.NewMarotoPDFGenerator()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: registro y corrección vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_RegistrarYCorregirMovimiento(t *testing.T) {
	app := buildTestApp(t)

	// Entrada de 50 unidades al producto "1" en la bodega "1" (stock previo 5).
	resp := doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID:   "1",
		WarehouseID: "1",
		Type:        "entry",
		Quantity:    50,
		CreatedBy:   "admin",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	mov := decodeJSON[dto.MovementResponse](t, resp)
	assert.EqualValues(t, 5, mov.PreviousStock)
	assert.EqualValues(t, 55, mov.NewStock)

	// Corrección: anexa el reverso y enlaza ambos movimientos.
	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/movements/"+mov.ID+"/correct", dto.CorrectMovementRequest{
		Notes: "conteo equivocado",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	correction := decodeJSON[dto.MovementResponse](t, resp)
	assert.Equal(t, "correction", correction.Type)
	assert.EqualValues(t, -50, correction.Quantity)
	assert.Equal(t, mov.ID, correction.CorrectionOf)

	// El original queda marcado.
	resp = doJSON(t, app, fiber.MethodGet, "/api/inventory/movements/"+mov.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stored := decodeJSON[dto.MovementResponse](t, resp)
	assert.Equal(t, correction.ID, stored.CorrectedBy)

	// Segunda corrección: 409 ALREADY_CORRECTED.
	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/movements/"+mov.ID+"/correct", dto.CorrectMovementRequest{Notes: "otra"})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "ALREADY_CORRECTED", errResp.Code)

	// Corregir la corrección: 422 INVALID_TARGET.
	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/movements/"+correction.ID+"/correct", dto.CorrectMovementRequest{Notes: "no"})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errResp = decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_TARGET", errResp.Code)
}

func TestHTTP_MovimientoInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/inventory/movements/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/movements/no-existe/correct", dto.CorrectMovementRequest{Notes: "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHTTP_SalidaSinStock(t *testing.T) {
	app := buildTestApp(t)

	// El producto "3" solo tiene 3 unidades en la bodega "1".
	resp := doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID:   "3",
		WarehouseID: "1",
		Type:        "exit",
		Quantity:    10,
		ExitReason:  "sale",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)
}

func TestHTTP_ListarMovimientosPorProducto(t *testing.T) {
	app := buildTestApp(t)

	for i, productID := range []string{"1", "1", "2"} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
			ProductID:   productID,
			WarehouseID: "1",
			Type:        "entry",
			Quantity:    int64(i + 1),
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/inventory/movements?product_id=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeJSON[dto.MovementListResponse](t, resp)
	require.Len(t, list.Items, 2)

	resp = doJSON(t, app, fiber.MethodGet, "/api/inventory/movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list = decodeJSON[dto.MovementListResponse](t, resp)
	require.Len(t, list.Items, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Primitivas de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_AjusteYTraslado(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/inventory/stock/adjust", dto.AdjustStockRequest{
		ProductID:   "4",
		WarehouseID: "1",
		Delta:       -10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	product := decodeJSON[dto.ProductResponse](t, resp)
	assert.EqualValues(t, 40, product.Stock)

	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/stock/transfer", dto.TransferStockRequest{
		ProductID:       "4",
		FromWarehouseID: "1",
		ToWarehouseID:   "2",
		Quantity:        5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	product = decodeJSON[dto.ProductResponse](t, resp)
	assert.EqualValues(t, 40, product.Stock, "el traslado no cambia el total")
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD por HTTP: códigos y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_ProductosCRUD(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{
		Name:     "Anticongelante",
		Category: "Lubricantes",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeJSON[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// SKU duplicado contra el catálogo de demostración.
	resp = doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{
		Name:     "Copia",
		Category: "Lubricantes",
		SKU:      "ACE-5W30-001",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", errResp.Code)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/low-stock", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	low := decodeJSON[dto.ProductListResponse](t, resp)
	assert.Len(t, low.Items, 3)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestHTTP_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)

	req, err := http.NewRequest(fiber.MethodPost, "/api/products", bytes.NewReader([]byte("{no es json")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errResp := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_BODY", errResp.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y catálogos
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_ReporteMovimientosPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID:   "1",
		WarehouseID: "1",
		Type:        "entry",
		Quantity:    10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/reports/movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

func TestHTTP_KardexProductoInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/reports/products/999/kardex", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHTTP_Catalogos(t *testing.T) {
	app := buildTestApp(t)

	for _, path := range []string{"/api/catalogs/exit-reasons", "/api/catalogs/units"} {
		resp := doJSON(t, app, fiber.MethodGet, path, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}
