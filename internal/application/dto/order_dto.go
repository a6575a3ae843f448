package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden al crearla.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden de compra o venta.
// Para ventas se requiere customer_id; para compras, supplier_id.
// Tax es un monto (aritmética simple, sin motor de impuestos).
type CreateOrderRequest struct {
	Type       string             `json:"type"`
	CustomerID string             `json:"customer_id,omitempty"`
	SupplierID string             `json:"supplier_id,omitempty"`
	Items      []OrderItemRequest `json:"items"`
	Tax        decimal.Decimal    `json:"tax"`
	Notes      string             `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	Status       string              `json:"status"`
	StatusLabel  string              `json:"status_label"`
	CustomerID   string              `json:"customer_id,omitempty"`
	CustomerName string              `json:"customer_name,omitempty"`
	SupplierID   string              `json:"supplier_id,omitempty"`
	SupplierName string              `json:"supplier_name,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
