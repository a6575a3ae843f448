package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La columna seq (BIGSERIAL) preserva el orden de
// inserción para desempatar movimientos con el mismo created_at.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `
	id, product_id, product_name, type, quantity, previous_stock, new_stock,
	warehouse_id, warehouse_name,
	COALESCE(destination_warehouse_id, ''), COALESCE(destination_warehouse_name, ''),
	COALESCE(supplier_id, ''), COALESCE(supplier_name, ''),
	COALESCE(exit_reason, ''), COALESCE(notes, ''),
	COALESCE(correction_of, ''), COALESCE(corrected_by, ''),
	created_at, created_by`

// Create anexa un movimiento al libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (
			id, product_id, product_name, type, quantity, previous_stock, new_stock,
			warehouse_id, warehouse_name, destination_warehouse_id, destination_warehouse_name,
			supplier_id, supplier_name, exit_reason, notes, correction_of, corrected_by,
			created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''),
			NULLIF($14, ''), NULLIF($15, ''), NULLIF($16, ''), NULLIF($17, ''),
			$18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.ProductName, movement.Type,
		movement.Quantity, movement.PreviousStock, movement.NewStock,
		movement.WarehouseID, movement.WarehouseName,
		movement.DestinationWarehouseID, movement.DestinationWarehouseName,
		movement.SupplierID, movement.SupplierName,
		movement.ExitReason, movement.Notes,
		movement.CorrectionOf, movement.CorrectedBy,
		movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, o nil si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// ListAll lista el libro completo, del más reciente al más antiguo.
func (r *StockMovementRepo) ListAll() ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements ORDER BY created_at DESC, seq DESC`
	return r.list(query)
}

// ListByProduct lista los movimientos de un producto, del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC, seq DESC`
	return r.list(query, productID)
}

// MarkCorrected enlaza corrected_by exactamente una vez. El WHERE con
// corrected_by IS NULL hace la escritura write-once a nivel de fila.
func (r *StockMovementRepo) MarkCorrected(id, correctionID string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stock_movements SET corrected_by = $2 WHERE id = $1 AND corrected_by IS NULL`,
		id, correctionID,
	)
	if err != nil {
		return fmt.Errorf("mark corrected: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	err = r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM stock_movements WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("mark corrected: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
		&m.PreviousStock, &m.NewStock, &m.WarehouseID, &m.WarehouseName,
		&m.DestinationWarehouseID, &m.DestinationWarehouseName,
		&m.SupplierID, &m.SupplierName, &m.ExitReason, &m.Notes,
		&m.CorrectionOf, &m.CorrectedBy, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
