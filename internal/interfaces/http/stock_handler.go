package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// StockHandler expone las primitivas de stock por bodega. A diferencia de los
// movimientos, estas operaciones no escriben en el libro.
type StockHandler struct {
	stockUC   *inventory.StockUseCase
	productUC *usecase.ProductUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stockUC *inventory.StockUseCase, productUC *usecase.ProductUseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC, productUC: productUC}
}

// Adjust godoc
// @Summary      Ajustar stock de una bodega (delta con signo, sin movimiento)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID == "" || in.WarehouseID == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	if _, err := h.stockUC.AdjustWarehouseStock(c.Context(), in.ProductID, in.WarehouseID, in.Delta); err != nil {
		return respondError(c, err)
	}
	out, err := h.productUC.GetByID(in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas (sin movimiento en el libro)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "Traslado"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	if _, err := h.stockUC.Transfer(c.Context(), in.ProductID, in.FromWarehouseID, in.ToWarehouseID, in.Quantity); err != nil {
		return respondError(c, err)
	}
	out, err := h.productUC.GetByID(in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
