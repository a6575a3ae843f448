package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
)

func newCustomerUseCase(t *testing.T) *usecase.CustomerUseCase {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	return usecase.NewCustomerUseCase(store.Customers())
}

func TestCustomerCreate_NombreObligatorio(t *testing.T) {
	uc := newCustomerUseCase(t)

	_, err := uc.Create(dto.CreateCustomerRequest{Email: "sin@nombre.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El listado va en orden alfabético y la búsqueda pliega acentos.
func TestCustomerList_OrdenYBusqueda(t *testing.T) {
	uc := newCustomerUseCase(t)

	_, err := uc.Create(dto.CreateCustomerRequest{Name: "Andrés Ruiz", Phone: "555-0001"})
	require.NoError(t, err)

	list, err := uc.List("", 50, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Andrés Ruiz", list.Items[0].Name)

	found, err := uc.List("garcia", 50, 0)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "María García", found.Items[0].Name)

	// También por teléfono.
	found, err = uc.List("555-0001", 50, 0)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Andrés Ruiz", found.Items[0].Name)
}

func TestCustomerUpdateYDelete(t *testing.T) {
	uc := newCustomerUseCase(t)

	newPhone := "555-9999"
	resp, err := uc.Update("1", dto.UpdateCustomerRequest{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, newPhone, resp.Phone)
	assert.Equal(t, "María García", resp.Name)

	require.NoError(t, uc.Delete("1"))
	_, err = uc.GetByID("1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete("999"), domain.ErrNotFound)
}
