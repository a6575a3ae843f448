package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
)

func newProductUseCase(t *testing.T, seed bool) *usecase.ProductUseCase {
	t.Helper()
	store := memory.NewStore()
	if seed {
		store.Seed()
	}
	return usecase.NewProductUseCase(store.Products(), store.Stocks())
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Defaults(t *testing.T) {
	uc := newProductUseCase(t, false)

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:     "Anticongelante",
		Category: "Lubricantes",
		Price:    decimal.RequireFromString("19.90"),
		Cost:     decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Active, "los productos nacen activos")
	assert.EqualValues(t, 0, resp.Stock, "el stock solo cambia vía movimientos")
	assert.Equal(t, entity.UnitUnits, resp.Unit, "unidad por omisión")
}

func TestProductCreate_Validacion(t *testing.T) {
	uc := newProductUseCase(t, false)

	_, err := uc.Create(dto.CreateProductRequest{Category: "Lubricantes"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Category: "Y", Unit: "galones"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidad fuera de catálogo")

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "X", Category: "Y",
		Price: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := newProductUseCase(t, true)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:     "Otro aceite",
		Category: "Lubricantes",
		SKU:      "ACE-5W30-001",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta y edición
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_IncluyeDesglosePorBodega(t *testing.T) {
	uc := newProductUseCase(t, true)

	resp, err := uc.GetByID("4")
	require.NoError(t, err)

	assert.EqualValues(t, 50, resp.Stock)
	require.Len(t, resp.StockByWarehouse, 2)
	byWarehouse := map[string]int64{}
	for _, s := range resp.StockByWarehouse {
		byWarehouse[s.WarehouseID] = s.Quantity
	}
	assert.EqualValues(t, 30, byWarehouse["1"])
	assert.EqualValues(t, 20, byWarehouse["2"])
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	uc := newProductUseCase(t, true)

	newPrice := decimal.RequireFromString("49.99")
	resp, err := uc.Update("1", dto.UpdateProductRequest{
		Name:  strPtr("Aceite Sintético 5W-30"),
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Aceite Sintético 5W-30", resp.Name)
	assert.True(t, resp.Price.Equal(newPrice))
	assert.EqualValues(t, 5, resp.Stock)
}

func TestProductUpdate_SKUEnUso(t *testing.T) {
	uc := newProductUseCase(t, true)

	_, err := uc.Update("1", dto.UpdateProductRequest{SKU: strPtr("FIL-AIR-002")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductToggleActive_ArchivaYRestaura(t *testing.T) {
	uc := newProductUseCase(t, true)

	resp, err := uc.ToggleActive("1")
	require.NoError(t, err)
	assert.False(t, resp.Active)

	// Archivado desaparece del listado normal pero sigue consultable.
	list, err := uc.List("", false, 50, 0)
	require.NoError(t, err)
	for _, p := range list.Items {
		assert.NotEqual(t, "1", p.ID)
	}
	_, err = uc.GetByID("1")
	assert.NoError(t, err)

	resp, err = uc.ToggleActive("1")
	require.NoError(t, err)
	assert.True(t, resp.Active)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := newProductUseCase(t, true)

	err := uc.Delete("999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// La búsqueda no distingue mayúsculas ni acentos.
func TestProductList_BusquedaSinAcentos(t *testing.T) {
	uc := newProductUseCase(t, true)

	list, err := uc.List("bujias", false, 50, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Bujías NGK", list.Items[0].Name)

	// También por SKU.
	list, err = uc.List("fre-pad", false, 50, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Pastillas de Freno", list.Items[0].Name)
}

func TestProductListLowStock_SoloActivosBajoMinimo(t *testing.T) {
	uc := newProductUseCase(t, true)

	// En el catálogo de demostración: 5<10, 8<15 y 3<5; las bujías van sobradas.
	list, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	for _, p := range list.Items {
		assert.Less(t, p.Stock, p.MinStock)
	}

	// Archivar un producto lo saca del reporte.
	_, err = uc.ToggleActive("1")
	require.NoError(t, err)
	list, err = uc.ListLowStock()
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}
