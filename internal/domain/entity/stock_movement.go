package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry      = "entry"      // entrada de mercancía
	MovementTypeExit       = "exit"       // salida (venta, merma, etc.)
	MovementTypeTransfer   = "transfer"   // traslado entre bodegas
	MovementTypeCorrection = "correction" // reverso compensatorio de otro movimiento
)

// Motivos de salida.
const (
	ExitReasonSale    = "sale"
	ExitReasonLoss    = "loss"
	ExitReasonDamaged = "damaged"
	ExitReasonExpired = "expired"
	ExitReasonOther   = "other"
)

// StockMovement es un evento del libro de movimientos. Una vez creado es
// inmutable, con una sola excepción: CorrectedBy pasa de vacío al ID de la
// corrección exactamente una vez. El libro es append-only; nunca se borra
// ni se reordena un movimiento.
//
// Convención de signo: entradas positivas, salidas negativas. Una corrección
// guarda la cantidad negada del original y los snapshots de stock invertidos.
type StockMovement struct {
	ID            string
	ProductID     string
	ProductName   string // denormalizado al momento del registro
	Type          string
	Quantity      int64
	PreviousStock int64 // stock de la bodega justo antes del evento
	NewStock      int64 // stock de la bodega justo después del evento
	WarehouseID   string
	WarehouseName string

	// Solo para transfer: bodega destino.
	DestinationWarehouseID   string
	DestinationWarehouseName string

	// Contexto opcional de entrada/salida.
	SupplierID   string
	SupplierName string
	ExitReason   string

	Notes string

	// CorrectionOf: ID del movimiento original, solo en correcciones.
	CorrectionOf string
	// CorrectedBy: ID de la corrección que revirtió este movimiento, write-once.
	CorrectedBy string

	CreatedAt time.Time
	CreatedBy string
}

// IsCorrection indica si el movimiento es una corrección (no corregible de nuevo).
func (m *StockMovement) IsCorrection() bool { return m.Type == MovementTypeCorrection }

// IsCorrected indica si el movimiento ya fue revertido por una corrección.
func (m *StockMovement) IsCorrected() bool { return m.CorrectedBy != "" }

// ValidMovementType valida el tipo de movimiento.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntry, MovementTypeExit, MovementTypeTransfer, MovementTypeCorrection:
		return true
	}
	return false
}

// ValidExitReason valida el motivo de salida.
func ValidExitReason(r string) bool {
	switch r {
	case ExitReasonSale, ExitReasonLoss, ExitReasonDamaged, ExitReasonExpired, ExitReasonOther:
		return true
	}
	return false
}

// MovementTypeLabel etiqueta en español para mostrar en UI y reportes.
func MovementTypeLabel(t string) string {
	switch t {
	case MovementTypeEntry:
		return "Entrada"
	case MovementTypeExit:
		return "Salida"
	case MovementTypeTransfer:
		return "Transferencia"
	case MovementTypeCorrection:
		return "Corrección"
	}
	return t
}

// CatalogItem par valor/etiqueta para catálogos de UI.
type CatalogItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ExitReasons catálogo de motivos de salida.
func ExitReasons() []CatalogItem {
	return []CatalogItem{
		{Value: ExitReasonSale, Label: "Venta"},
		{Value: ExitReasonLoss, Label: "Merma"},
		{Value: ExitReasonDamaged, Label: "Dañado"},
		{Value: ExitReasonExpired, Label: "Caducado"},
		{Value: ExitReasonOther, Label: "Otro"},
	}
}
