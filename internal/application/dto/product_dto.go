package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicia en 0
// y solo cambia mediante movimientos de inventario.
type CreateProductRequest struct {
	SKU         string          `json:"sku,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	MinStock    int64           `json:"min_stock"`
	Unit        string          `json:"unit"`
	SupplierID  string          `json:"supplier_id,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// No permite modificar el stock: se maneja vía movimientos.
type UpdateProductRequest struct {
	SKU         *string          `json:"sku,omitempty"`
	Barcode     *string          `json:"barcode,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	MinStock    *int64           `json:"min_stock,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	SupplierID  *string          `json:"supplier_id,omitempty"`
}

// WarehouseStockDTO cantidad en una bodega.
type WarehouseStockDTO struct {
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string              `json:"id"`
	SKU              string              `json:"sku,omitempty"`
	Barcode          string              `json:"barcode,omitempty"`
	Name             string              `json:"name"`
	Description      string              `json:"description,omitempty"`
	Category         string              `json:"category"`
	Price            decimal.Decimal     `json:"price"`
	Cost             decimal.Decimal     `json:"cost"`
	Stock            int64               `json:"stock"`
	StockByWarehouse []WarehouseStockDTO `json:"stock_by_warehouse,omitempty"`
	MinStock         int64               `json:"min_stock"`
	Unit             string              `json:"unit"`
	SupplierID       string              `json:"supplier_id,omitempty"`
	Active           bool                `json:"active"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
