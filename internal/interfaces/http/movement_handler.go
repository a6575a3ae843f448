package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	stockUC  *inventory.StockUseCase
	ledgerUC *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(stockUC *inventory.StockUseCase, ledgerUC *ledger.UseCase) *MovementHandler {
	return &MovementHandler{stockUC: stockUC, ledgerUC: ledgerUC}
}

// Register godoc
// @Summary      Registrar movimiento (entrada, salida o traslado)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mov, err := h.stockUC.RegisterFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// Correct godoc
// @Summary      Corregir un movimiento (reverso compensatorio)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento original"
// @Param        body  body  dto.CorrectMovementRequest  true  "Notas de la corrección"
// @Success      201   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id}/correct [post]
func (h *MovementHandler) Correct(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CorrectMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	actor := in.CreatedBy
	if actor == "" {
		actor = "admin"
	}
	mov, err := h.ledgerUC.Correct(c.Context(), id, in.Notes, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var (
		movements []*entity.StockMovement
		err       error
	)
	if productID := c.Query("product_id"); productID != "" {
		movements, err = h.ledgerUC.ListForProduct(c.Context(), productID)
	} else {
		movements, err = h.ledgerUC.ListAll(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.ledgerUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponse(mov))
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:                       m.ID,
		ProductID:                m.ProductID,
		ProductName:              m.ProductName,
		Type:                     m.Type,
		Quantity:                 m.Quantity,
		PreviousStock:            m.PreviousStock,
		NewStock:                 m.NewStock,
		WarehouseID:              m.WarehouseID,
		WarehouseName:            m.WarehouseName,
		DestinationWarehouseID:   m.DestinationWarehouseID,
		DestinationWarehouseName: m.DestinationWarehouseName,
		SupplierID:               m.SupplierID,
		SupplierName:             m.SupplierName,
		ExitReason:               m.ExitReason,
		Notes:                    m.Notes,
		CorrectionOf:             m.CorrectionOf,
		CorrectedBy:              m.CorrectedBy,
		CreatedAt:                m.CreatedAt,
		CreatedBy:                m.CreatedBy,
	}
}
