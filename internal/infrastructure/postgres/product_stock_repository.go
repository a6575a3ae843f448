package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductStockRepository = (*ProductStockRepo)(nil)

// ProductStockRepo implementación del stock por bodega sobre PostgreSQL
// (usable con pool o tx).
type ProductStockRepo struct {
	q Querier
}

// NewProductStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductStockRepository(q Querier) *ProductStockRepo {
	return &ProductStockRepo{q: q}
}

// Get obtiene el stock de un producto en una bodega; fila en cero si no existe.
func (r *ProductStockRepo) Get(productID, warehouseID string) (*entity.ProductStock, error) {
	return r.get(productID, warehouseID, false)
}

// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
func (r *ProductStockRepo) GetForUpdate(productID, warehouseID string) (*entity.ProductStock, error) {
	return r.get(productID, warehouseID, true)
}

func (r *ProductStockRepo) get(productID, warehouseID string, forUpdate bool) (*entity.ProductStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM product_stock WHERE product_id = $1 AND warehouse_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get product stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad por producto y bodega.
func (r *ProductStockRepo) Upsert(stock *entity.ProductStock) error {
	query := `
		INSERT INTO product_stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.WarehouseID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert product stock: %w", err)
	}
	return nil
}

// ListByProduct lista las filas de stock del producto, por bodega.
func (r *ProductStockRepo) ListByProduct(productID string) ([]*entity.ProductStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM product_stock WHERE product_id = $1 ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SumByProduct suma las cantidades de todas las bodegas del producto.
func (r *ProductStockRepo) SumByProduct(productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM product_stock WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum product stock: %w", err)
	}
	return total, nil
}
