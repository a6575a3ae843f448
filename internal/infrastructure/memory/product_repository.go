package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/normalize"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s  *Store
	tx bool
}

func (r *ProductRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *ProductRepo) rlock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	defer r.lock()()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	c := *product
	r.s.products[c.ID] = &c
	return nil
}

// GetByID devuelve una copia, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.rlock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

// GetBySKU devuelve el producto con ese SKU, o nil.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	defer r.rlock()()
	for _, p := range r.s.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	defer r.lock()()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *product
	r.s.products[c.ID] = &c
	return nil
}

// Delete elimina el producto y sus filas de stock.
func (r *ProductRepo) Delete(id string) error {
	defer r.lock()()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	for k, st := range r.s.stocks {
		if st.ProductID == id {
			delete(r.s.stocks, k)
		}
	}
	return nil
}

// List productos ordenados por fecha de creación descendente.
func (r *ProductRepo) List(includeArchived bool, limit, offset int) ([]*entity.Product, error) {
	defer r.rlock()()
	return r.collect(func(p *entity.Product) bool {
		return includeArchived || p.Active
	}, limit, offset), nil
}

// Search busca por nombre, SKU o código de barras sin distinguir mayúsculas
// ni acentos.
func (r *ProductRepo) Search(query string, includeArchived bool, limit, offset int) ([]*entity.Product, error) {
	defer r.rlock()()
	folded := normalize.Fold(query)
	return r.collect(func(p *entity.Product) bool {
		if !includeArchived && !p.Active {
			return false
		}
		return normalize.Contains(p.Name, folded) ||
			normalize.Contains(p.SKU, folded) ||
			normalize.Contains(p.Barcode, folded)
	}, limit, offset), nil
}

// ListBelowMinStock productos activos con stock total por debajo del mínimo.
func (r *ProductRepo) ListBelowMinStock() ([]*entity.Product, error) {
	defer r.rlock()()
	return r.collect(func(p *entity.Product) bool {
		return p.Active && p.Stock < p.MinStock
	}, 0, 0), nil
}

// UpdateTotalStock materializa el stock total del producto.
func (r *ProductRepo) UpdateTotalStock(id string, stock int64, updatedAt time.Time) error {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.UpdatedAt = updatedAt
	return nil
}

// UpdateCost actualiza el costo promedio ponderado.
func (r *ProductRepo) UpdateCost(id string, cost decimal.Decimal, updatedAt time.Time) error {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Cost = cost
	p.UpdatedAt = updatedAt
	return nil
}

// collect filtra, ordena por CreatedAt descendente y pagina. limit 0 = sin límite.
func (r *ProductRepo) collect(keep func(*entity.Product) bool, limit, offset int) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.s.products {
		if keep(p) {
			c := *p
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, limit, offset)
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
