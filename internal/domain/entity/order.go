package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden.
const (
	OrderTypePurchase = "purchase" // compra a proveedor
	OrderTypeSale     = "sale"     // venta a cliente
)

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem línea de una orden.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// Order representa una orden de compra (a proveedor) o de venta (a cliente).
type Order struct {
	ID           string
	Type         string
	Status       string
	CustomerID   string // solo ventas
	CustomerName string
	SupplierID   string // solo compras
	SupplierName string
	Items        []OrderItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidOrderType valida el tipo de orden.
func ValidOrderType(t string) bool {
	return t == OrderTypePurchase || t == OrderTypeSale
}

// ValidOrderStatus valida el estado de una orden.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderStatusLabel etiqueta en español para mostrar en UI.
func OrderStatusLabel(s string) string {
	switch s {
	case OrderStatusPending:
		return "Pendiente"
	case OrderStatusConfirmed:
		return "Confirmado"
	case OrderStatusShipped:
		return "Enviado"
	case OrderStatusDelivered:
		return "Entregado"
	case OrderStatusCancelled:
		return "Cancelado"
	}
	return s
}
