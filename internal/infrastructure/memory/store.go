// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas por un RWMutex. Se usa en tests y en modo demo
// (STORAGE_DRIVER=memory); el contrato observable es el mismo que el del
// adaptador de PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Store agrupa todas las colecciones bajo un único mutex. Los movimientos se
// guardan además en un slice append-only que preserva el orden de inserción
// para el desempate de listados.
type Store struct {
	mu sync.RWMutex

	movements     []*entity.StockMovement
	movementsByID map[string]*entity.StockMovement
	stocks        map[string]*entity.ProductStock // clave productID + "|" + warehouseID
	products      map[string]*entity.Product
	warehouses    map[string]*entity.Warehouse
	suppliers     map[string]*entity.Supplier
	customers     map[string]*entity.Customer
	orders        map[string]*entity.Order
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		movementsByID: make(map[string]*entity.StockMovement),
		stocks:        make(map[string]*entity.ProductStock),
		products:      make(map[string]*entity.Product),
		warehouses:    make(map[string]*entity.Warehouse),
		suppliers:     make(map[string]*entity.Supplier),
		customers:     make(map[string]*entity.Customer),
		orders:        make(map[string]*entity.Order),
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

// Repositorios atados al store. Los repos con tx=true asumen que el TxRunner
// ya tomó el lock de escritura y no vuelven a bloquear.

func (s *Store) Movements() repository.StockMovementRepository {
	return &MovementRepo{s: s}
}

func (s *Store) Stocks() repository.ProductStockRepository {
	return &StockRepo{s: s}
}

func (s *Store) Products() repository.ProductRepository {
	return &ProductRepo{s: s}
}

func (s *Store) Warehouses() repository.WarehouseRepository {
	return &WarehouseRepo{s: s}
}

func (s *Store) Suppliers() repository.SupplierRepository {
	return &SupplierRepo{s: s}
}

func (s *Store) Customers() repository.CustomerRepository {
	return &CustomerRepo{s: s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &OrderRepo{s: s}
}

var _ ledger.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner simula una transacción: toma el lock de escritura durante todo el
// callback y, si este falla, restaura un snapshot tomado al inicio. Así una
// operación rechazada no deja estado parcial y ningún lector observa estados
// intermedios.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos atados al store bajo lock exclusivo; rollback por
// snapshot si fn devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.ProductStockRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	err := fn(
		&MovementRepo{s: r.s, tx: true},
		&StockRepo{s: r.s, tx: true},
		&ProductRepo{s: r.s, tx: true},
	)
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	movements     []*entity.StockMovement
	movementsByID map[string]*entity.StockMovement
	stocks        map[string]*entity.ProductStock
	products      map[string]*entity.Product
}

// snapshot copia las colecciones que las transacciones pueden tocar.
// Los valores se clonan para que mutaciones posteriores no contaminen la copia.
func (s *Store) snapshot() *storeSnapshot {
	snap := &storeSnapshot{
		movements:     make([]*entity.StockMovement, len(s.movements)),
		movementsByID: make(map[string]*entity.StockMovement, len(s.movementsByID)),
		stocks:        make(map[string]*entity.ProductStock, len(s.stocks)),
		products:      make(map[string]*entity.Product, len(s.products)),
	}
	for i, m := range s.movements {
		c := *m
		snap.movements[i] = &c
		snap.movementsByID[c.ID] = &c
	}
	for k, st := range s.stocks {
		c := *st
		snap.stocks[k] = &c
	}
	for k, p := range s.products {
		c := *p
		snap.products[k] = &c
	}
	return snap
}

func (s *Store) restore(snap *storeSnapshot) {
	s.movements = snap.movements
	s.movementsByID = snap.movementsByID
	s.stocks = snap.stocks
	s.products = snap.products
}
