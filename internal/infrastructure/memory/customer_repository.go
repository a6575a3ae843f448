package memory

import (
	"sort"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/normalize"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria.
type CustomerRepo struct {
	s *Store
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; ok {
		return domain.ErrDuplicate
	}
	c := *customer
	r.s.customers[c.ID] = &c
	return nil
}

// GetByID devuelve una copia, o nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cu, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	c := *cu
	return &c, nil
}

// Update reemplaza el cliente existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *customer
	r.s.customers[c.ID] = &c
	return nil
}

// Delete elimina el cliente.
func (r *CustomerRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}

// List clientes en orden alfabético por nombre.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(*entity.Customer) bool { return true }, limit, offset), nil
}

// Search busca por nombre, email o teléfono.
func (r *CustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.collect(func(c *entity.Customer) bool {
		return normalize.Contains(c.Name, query) ||
			normalize.Contains(c.Email, query) ||
			normalize.Contains(c.Phone, query)
	}, limit, offset), nil
}

func (r *CustomerRepo) collect(keep func(*entity.Customer) bool, limit, offset int) []*entity.Customer {
	var out []*entity.Customer
	for _, cu := range r.s.customers {
		if keep(cu) {
			c := *cu
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, limit, offset)
}
