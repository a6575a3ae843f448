package memory

import (
	"sort"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos en memoria (append-only).
type MovementRepo struct {
	s  *Store
	tx bool
}

func (r *MovementRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *MovementRepo) rlock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

// Create anexa el movimiento. Guarda una copia: mutaciones posteriores del
// caller no tocan el libro.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	defer r.lock()()
	if _, ok := r.s.movementsByID[movement.ID]; ok {
		return domain.ErrDuplicate
	}
	c := *movement
	r.s.movements = append(r.s.movements, &c)
	r.s.movementsByID[c.ID] = &c
	return nil
}

// GetByID devuelve una copia del movimiento, o nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	defer r.rlock()()
	m, ok := r.s.movementsByID[id]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

// ListAll snapshot del libro completo, más recientes primero; con timestamps
// iguales gana el insertado más tarde.
func (r *MovementRepo) ListAll() ([]*entity.StockMovement, error) {
	defer r.rlock()()
	return sortedCopy(r.s.movements, func(*entity.StockMovement) bool { return true }), nil
}

// ListByProduct igual que ListAll, filtrado a un producto.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	defer r.rlock()()
	return sortedCopy(r.s.movements, func(m *entity.StockMovement) bool {
		return m.ProductID == productID
	}), nil
}

// MarkCorrected enlaza CorrectedBy exactamente una vez.
func (r *MovementRepo) MarkCorrected(id, correctionID string) error {
	defer r.lock()()
	m, ok := r.s.movementsByID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if m.CorrectedBy != "" {
		return domain.ErrConflict
	}
	m.CorrectedBy = correctionID
	return nil
}

func sortedCopy(src []*entity.StockMovement, keep func(*entity.StockMovement) bool) []*entity.StockMovement {
	out := make([]*entity.StockMovement, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		if keep(src[i]) {
			c := *src[i]
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
