package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAverageCost(t *testing.T) {
	cases := []struct {
		name         string
		currentStock int64
		currentCost  string
		entryQty     int64
		entryCost    string
		want         string
	}{
		{"promedio simple", 5, "32.00", 15, "40.00", "38"},
		{"sin stock previo toma el costo de entrada", 0, "0", 10, "21.50", "21.5"},
		{"misma cantidad promedia a la mitad", 10, "10.00", 10, "20.00", "15"},
		{"stock negativo anulado por la entrada", -5, "10.00", 5, "20.00", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.AverageCost(tc.currentStock, dec(tc.currentCost), tc.entryQty, dec(tc.entryCost))
			assert.True(t, got.Equal(dec(tc.want)), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}
