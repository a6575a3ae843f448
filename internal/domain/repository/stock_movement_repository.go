package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos (append-only). Los listados devuelven snapshots ordenados del
// más reciente al más antiguo; con timestamps iguales desempata el orden de
// inserción. Mutar un snapshot devuelto no afecta lo almacenado.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListAll() ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)

	// MarkCorrected enlaza CorrectedBy en el original, exactamente una vez.
	// Devuelve domain.ErrConflict si el original ya tenía corrección enlazada
	// y domain.ErrNotFound si el original no existe. Es la única mutación
	// permitida sobre un movimiento existente.
	MarkCorrected(id, correctionID string) error
}
