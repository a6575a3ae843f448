package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// type entry: product_id, warehouse_id, quantity > 0; supplier_id y unit_cost opcionales.
// type exit: product_id, warehouse_id, quantity > 0, exit_reason.
// type transfer: product_id, from_warehouse_id, to_warehouse_id, quantity > 0.
type RegisterMovementRequest struct {
	ProductID       string           `json:"product_id"`
	WarehouseID     string           `json:"warehouse_id,omitempty"`
	FromWarehouseID string           `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string           `json:"to_warehouse_id,omitempty"`
	Type            string           `json:"type"`
	Quantity        int64            `json:"quantity"`
	SupplierID      string           `json:"supplier_id,omitempty"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	ExitReason      string           `json:"exit_reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
}

// CorrectMovementRequest body para POST /api/inventory/movements/{id}/correct.
type CorrectMovementRequest struct {
	Notes     string `json:"notes"`
	CreatedBy string `json:"created_by,omitempty"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID                       string    `json:"id"`
	ProductID                string    `json:"product_id"`
	ProductName              string    `json:"product_name"`
	Type                     string    `json:"type"`
	Quantity                 int64     `json:"quantity"`
	PreviousStock            int64     `json:"previous_stock"`
	NewStock                 int64     `json:"new_stock"`
	WarehouseID              string    `json:"warehouse_id"`
	WarehouseName            string    `json:"warehouse_name"`
	DestinationWarehouseID   string    `json:"destination_warehouse_id,omitempty"`
	DestinationWarehouseName string    `json:"destination_warehouse_name,omitempty"`
	SupplierID               string    `json:"supplier_id,omitempty"`
	SupplierName             string    `json:"supplier_name,omitempty"`
	ExitReason               string    `json:"exit_reason,omitempty"`
	Notes                    string    `json:"notes,omitempty"`
	CorrectionOf             string    `json:"correction_of,omitempty"`
	CorrectedBy              string    `json:"corrected_by,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	CreatedBy                string    `json:"created_by"`
}

// MovementListResponse lista de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// AdjustStockRequest body para POST /api/inventory/stock/adjust.
// Delta con signo; no registra movimiento en el libro (primitiva de bajo nivel).
type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Delta       int64  `json:"delta"`
}

// TransferStockRequest body para POST /api/inventory/stock/transfer.
type TransferStockRequest struct {
	ProductID       string `json:"product_id"`
	FromWarehouseID string `json:"from_warehouse_id"`
	ToWarehouseID   string `json:"to_warehouse_id"`
	Quantity        int64  `json:"quantity"`
}
