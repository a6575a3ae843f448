package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bujías NGK", "bujias ngk"},
		{"  Suspensión  ", "suspension"},
		{"ACEITE 5W-30", "aceite 5w-30"},
		{"ñandú", "nandu"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalize.Fold(tc.in), "Fold(%q)", tc.in)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, normalize.Contains("Pastillas de Freno", "freno"))
	assert.True(t, normalize.Contains("Bujías NGK", "BUJIAS"))
	assert.True(t, normalize.Contains("suspension", "Suspensión"))
	assert.False(t, normalize.Contains("Filtro de Aire", "aceite"))
}
