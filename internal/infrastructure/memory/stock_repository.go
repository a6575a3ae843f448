package memory

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductStockRepository = (*StockRepo)(nil)

// StockRepo stock por producto+bodega en memoria.
type StockRepo struct {
	s  *Store
	tx bool
}

func (r *StockRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *StockRepo) rlock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

// Get devuelve la fila, o una fila en cero si la bodega no se rastrea aún.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.ProductStock, error) {
	defer r.rlock()()
	return r.get(productID, warehouseID), nil
}

// GetForUpdate en memoria equivale a Get: el TxRunner ya serializa escritores
// con el lock global.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.ProductStock, error) {
	defer r.rlock()()
	return r.get(productID, warehouseID), nil
}

func (r *StockRepo) get(productID, warehouseID string) *entity.ProductStock {
	if st, ok := r.s.stocks[stockKey(productID, warehouseID)]; ok {
		c := *st
		return &c
	}
	return &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID}
}

// Upsert inserta o reemplaza la fila.
func (r *StockRepo) Upsert(stock *entity.ProductStock) error {
	defer r.lock()()
	c := *stock
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now()
	}
	r.s.stocks[stockKey(c.ProductID, c.WarehouseID)] = &c
	return nil
}

// ListByProduct filas del producto en todas sus bodegas.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.ProductStock, error) {
	defer r.rlock()()
	var out []*entity.ProductStock
	for _, st := range r.s.stocks {
		if st.ProductID == productID {
			c := *st
			out = append(out, &c)
		}
	}
	return out, nil
}

// SumByProduct suma las cantidades de todas las bodegas del producto.
func (r *StockRepo) SumByProduct(productID string) (int64, error) {
	defer r.rlock()()
	var total int64
	for _, st := range r.s.stocks {
		if st.ProductID == productID {
			total += st.Quantity
		}
	}
	return total, nil
}
