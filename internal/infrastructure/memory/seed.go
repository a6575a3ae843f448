package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// Seed carga el catálogo de demostración: dos bodegas, dos proveedores,
// cuatro productos con su stock por bodega, dos clientes y dos órdenes de
// ejemplo. Pensado para el modo demo (STORAGE_DRIVER=memory con SEED=true)
// y para los tests de integración.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	warehouses := []*entity.Warehouse{
		{
			ID:          "1",
			Name:        "Almacén Principal",
			Location:    "Bodega Central",
			Description: "Almacén principal de productos",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Almacén Secundario",
			Location:    "Sucursal Norte",
			Description: "Almacén de respaldo",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, w := range warehouses {
		s.warehouses[w.ID] = w
	}

	suppliers := []*entity.Supplier{
		{
			ID:        "1",
			Name:      "Distribuidora AutoParts",
			Contact:   "Juan Pérez",
			Phone:     "555-1234",
			Email:     "ventas@autoparts.com",
			Address:   "Av. Industrial 123",
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Lubricantes del Norte",
			Contact:   "María García",
			Phone:     "555-5678",
			Email:     "contacto@lubnorte.com",
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, sp := range suppliers {
		s.suppliers[sp.ID] = sp
	}

	products := []*entity.Product{
		{
			ID:          "1",
			SKU:         "ACE-5W30-001",
			Barcode:     "7501234567890",
			Name:        "Aceite de Motor 5W-30",
			Description: "Aceite sintético de alta calidad",
			Category:    "lubricantes",
			Price:       decimal.RequireFromString("45.99"),
			Cost:        decimal.RequireFromString("32.00"),
			Stock:       5,
			MinStock:    10,
			Unit:        entity.UnitLiters,
			SupplierID:  "2",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			SKU:         "FIL-AIR-002",
			Barcode:     "7501234567891",
			Name:        "Filtro de Aire",
			Description: "Filtro de aire universal",
			Category:    "filtros",
			Price:       decimal.RequireFromString("25.50"),
			Cost:        decimal.RequireFromString("15.00"),
			Stock:       8,
			MinStock:    15,
			Unit:        entity.UnitUnits,
			SupplierID:  "1",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			SKU:         "FRE-PAD-003",
			Barcode:     "7501234567892",
			Name:        "Pastillas de Freno",
			Description: "Juego de pastillas de freno delanteras",
			Category:    "frenos",
			Price:       decimal.RequireFromString("89.99"),
			Cost:        decimal.RequireFromString("55.00"),
			Stock:       3,
			MinStock:    5,
			Unit:        entity.UnitBoxes,
			SupplierID:  "1",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "4",
			SKU:         "ELE-BUJ-004",
			Barcode:     "7501234567893",
			Name:        "Bujías NGK",
			Description: "Bujías de iridio para motor",
			Category:    "electrico",
			Price:       decimal.RequireFromString("15.00"),
			Cost:        decimal.RequireFromString("8.50"),
			Stock:       50,
			MinStock:    20,
			Unit:        entity.UnitUnits,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, p := range products {
		s.products[p.ID] = p
	}

	stocks := []*entity.ProductStock{
		{ProductID: "1", WarehouseID: "1", Quantity: 5, UpdatedAt: now},
		{ProductID: "2", WarehouseID: "1", Quantity: 8, UpdatedAt: now},
		{ProductID: "3", WarehouseID: "1", Quantity: 3, UpdatedAt: now},
		{ProductID: "4", WarehouseID: "1", Quantity: 30, UpdatedAt: now},
		{ProductID: "4", WarehouseID: "2", Quantity: 20, UpdatedAt: now},
	}
	for _, st := range stocks {
		s.stocks[stockKey(st.ProductID, st.WarehouseID)] = st
	}

	customers := []*entity.Customer{
		{
			ID:        "1",
			Name:      "María García",
			Email:     "maria@ejemplo.com",
			Phone:     "+52 555 123 4567",
			Address:   "Calle Principal 123, Ciudad",
			Notes:     "Cliente frecuente",
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Juan López",
			Email:     "juan@ejemplo.com",
			Phone:     "+52 555 987 6543",
			Address:   "Avenida Central 456, Ciudad",
			CreatedAt: time.Date(2024, 2, 20, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 2, 20, 14, 30, 0, 0, time.UTC),
		},
	}
	for _, c := range customers {
		s.customers[c.ID] = c
	}

	orders := []*entity.Order{
		{
			ID:           "1",
			Type:         entity.OrderTypeSale,
			Status:       entity.OrderStatusDelivered,
			CustomerID:   "1",
			CustomerName: "María García",
			Items: []entity.OrderItem{
				{
					ProductID:   "3",
					ProductName: "Pastillas de Freno",
					Quantity:    1,
					UnitPrice:   decimal.RequireFromString("89.99"),
					Total:       decimal.RequireFromString("89.99"),
				},
			},
			Subtotal:  decimal.RequireFromString("89.99"),
			Tax:       decimal.RequireFromString("14.40"),
			Total:     decimal.RequireFromString("104.39"),
			Notes:     "Entrega a domicilio",
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			Type:         entity.OrderTypePurchase,
			Status:       entity.OrderStatusPending,
			SupplierID:   "1",
			SupplierName: "Distribuidora AutoParts",
			Items: []entity.OrderItem{
				{
					ProductID:   "2",
					ProductName: "Filtro de Aire",
					Quantity:    50,
					UnitPrice:   decimal.RequireFromString("15.00"),
					Total:       decimal.RequireFromString("750.00"),
				},
				{
					ProductID:   "4",
					ProductName: "Bujías NGK",
					Quantity:    25,
					UnitPrice:   decimal.RequireFromString("8.50"),
					Total:       decimal.RequireFromString("212.50"),
				},
			},
			Subtotal:  decimal.RequireFromString("962.50"),
			Tax:       decimal.RequireFromString("154.00"),
			Total:     decimal.RequireFromString("1116.50"),
			Notes:     "Pedido mensual",
			CreatedAt: time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC),
		},
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
}
