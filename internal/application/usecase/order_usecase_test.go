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

func newOrderUseCase(t *testing.T) *usecase.OrderUseCase {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	return usecase.NewOrderUseCase(store.Orders(), store.Products(), store.Customers(), store.Suppliers())
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y totales
// ──────────────────────────────────────────────────────────────────────────────

// Una venta nace pendiente, con el nombre del cliente denormalizado y los
// totales calculados línea a línea.
func TestOrderCreate_VentaCalculaTotales(t *testing.T) {
	uc := newOrderUseCase(t)

	resp, err := uc.Create(dto.CreateOrderRequest{
		Type:       entity.OrderTypeSale,
		CustomerID: "1",
		Items: []dto.OrderItemRequest{
			{ProductID: "1", Quantity: 2, UnitPrice: decimal.RequireFromString("45.99")},
			{ProductID: "4", Quantity: 4, UnitPrice: decimal.RequireFromString("12.99")},
		},
		Tax: decimal.RequireFromString("22.95"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, "Pendiente", resp.StatusLabel)
	assert.Equal(t, "María García", resp.CustomerName)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Aceite de Motor 5W-30", resp.Items[0].ProductName)
	assert.True(t, resp.Items[0].Total.Equal(decimal.RequireFromString("91.98")))
	assert.True(t, resp.Items[1].Total.Equal(decimal.RequireFromString("51.96")))
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("143.94")))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("166.89")), "total = subtotal + impuesto")
}

func TestOrderCreate_CompraRequiereProveedor(t *testing.T) {
	uc := newOrderUseCase(t)

	items := []dto.OrderItemRequest{
		{ProductID: "2", Quantity: 10, UnitPrice: decimal.RequireFromString("15.00")},
	}

	_, err := uc.Create(dto.CreateOrderRequest{Type: entity.OrderTypePurchase, Items: items})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.Create(dto.CreateOrderRequest{
		Type:       entity.OrderTypePurchase,
		SupplierID: "1",
		Items:      items,
	})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora AutoParts", resp.SupplierName)
}

func TestOrderCreate_Validacion(t *testing.T) {
	uc := newOrderUseCase(t)

	_, err := uc.Create(dto.CreateOrderRequest{Type: "trueque", CustomerID: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera de catálogo")

	_, err = uc.Create(dto.CreateOrderRequest{Type: entity.OrderTypeSale, CustomerID: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = uc.Create(dto.CreateOrderRequest{
		Type:       entity.OrderTypeSale,
		CustomerID: "1",
		Items: []dto.OrderItemRequest{
			{ProductID: "999", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.Create(dto.CreateOrderRequest{
		Type:       entity.OrderTypeSale,
		CustomerID: "999",
		Items: []dto.OrderItemRequest{
			{ProductID: "1", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUpdateStatus(t *testing.T) {
	uc := newOrderUseCase(t)

	resp, err := uc.Create(dto.CreateOrderRequest{
		Type:       entity.OrderTypeSale,
		CustomerID: "2",
		Items: []dto.OrderItemRequest{
			{ProductID: "3", Quantity: 1, UnitPrice: decimal.RequireFromString("89.99")},
		},
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(resp.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, "Confirmado", updated.StatusLabel)

	_, err = uc.UpdateStatus(resp.ID, "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus("999", entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderList_FiltraPorTipoYEstado(t *testing.T) {
	uc := newOrderUseCase(t)

	// El catálogo de demostración trae una venta entregada y una compra pendiente.
	all, err := uc.List("", "", 50, 0)
	require.NoError(t, err)
	require.Len(t, all.Items, 2)

	sales, err := uc.List(entity.OrderTypeSale, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, sales.Items, 1)
	assert.Equal(t, entity.OrderTypeSale, sales.Items[0].Type)

	pending, err := uc.List("", entity.OrderStatusPending, 50, 0)
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, entity.OrderTypePurchase, pending.Items[0].Type)

	_, err = uc.List("trueque", "", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderDelete(t *testing.T) {
	uc := newOrderUseCase(t)

	resp, err := uc.Create(dto.CreateOrderRequest{
		Type:       entity.OrderTypeSale,
		CustomerID: "1",
		Items: []dto.OrderItemRequest{
			{ProductID: "2", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(resp.ID))
	_, err = uc.GetByID(resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
