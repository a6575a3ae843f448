package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de venta.
const (
	UnitUnits  = "unidades"
	UnitLiters = "litros"
	UnitBoxes  = "cajas"
)

// Product representa un producto del inventario (multi-bodega).
// Stock es el total materializado: siempre igual a la suma de las cantidades
// por bodega (ProductStock); se recalcula tras cada mutación de stock.
type Product struct {
	ID          string
	SKU         string
	Barcode     string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo de adquisición
	Stock       int64           // total sobre todas las bodegas
	MinStock    int64           // umbral de alerta de stock bajo
	Unit        string          // unidades, litros, cajas
	SupplierID  string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidUnit valida la unidad de venta.
func ValidUnit(u string) bool {
	switch u {
	case UnitUnits, UnitLiters, UnitBoxes:
		return true
	}
	return false
}

// Units catálogo de unidades.
func Units() []CatalogItem {
	return []CatalogItem{
		{Value: UnitUnits, Label: "Unidades"},
		{Value: UnitLiters, Label: "Litros"},
		{Value: UnitBoxes, Label: "Cajas"},
	}
}

// GrossProfit utilidad bruta unitaria (precio - costo).
func (p *Product) GrossProfit() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// GrossProfitMarginPct margen bruto porcentual; 0 si el precio es 0.
func (p *Product) GrossProfitMarginPct() decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Price).Mul(decimal.NewFromInt(100))
}

// ProductStock cantidad de un producto en una bodega concreta.
type ProductStock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
