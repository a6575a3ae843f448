package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// CatalogHandler expone los catálogos fijos que consume la UI.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// ExitReasons godoc
// @Summary      Catálogo de motivos de salida
// @Tags         catalogs
// @Produce      json
// @Success      200  {array}  entity.CatalogItem
// @Router       /api/catalogs/exit-reasons [get]
func (h *CatalogHandler) ExitReasons(c *fiber.Ctx) error {
	return c.JSON(entity.ExitReasons())
}

// Units godoc
// @Summary      Catálogo de unidades de venta
// @Tags         catalogs
// @Produce     json
// @Success      200  {array}  entity.CatalogItem
// @Router       /api/catalogs/units [get]
func (h *CatalogHandler) Units(c *fiber.Ctx) error {
	return c.JSON(entity.Units())
}
