package inventory

import "github.com/shopspring/decimal"

// AverageCost implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func AverageCost(currentStock int64, currentCost decimal.Decimal, entryQty int64, entryCost decimal.Decimal) decimal.Decimal {
	sum := currentStock + entryQty
	if sum <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(currentStock).Mul(currentCost).
		Add(decimal.NewFromInt(entryQty).Mul(entryCost))
	return num.Div(decimal.NewFromInt(sum))
}
