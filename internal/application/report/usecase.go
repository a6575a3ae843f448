// Package report arma los reportes imprimibles del inventario.
package report

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MovementPDFGenerator genera la representación PDF de un listado de
// movimientos. Lo implementa infrastructure/pdf.
type MovementPDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, title string, generatedAt time.Time, movements []*entity.StockMovement) ([]byte, error)
}

// UseCase reportes sobre el libro de movimientos.
type UseCase struct {
	movements repository.StockMovementRepository
	products  repository.ProductRepository
	generator MovementPDFGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	movements repository.StockMovementRepository,
	products repository.ProductRepository,
	generator MovementPDFGenerator,
) *UseCase {
	return &UseCase{movements: movements, products: products, generator: generator}
}

// MovementsPDF genera el reporte del libro completo, del más reciente al más
// antiguo.
func (uc *UseCase) MovementsPDF(ctx context.Context) ([]byte, error) {
	movements, err := uc.movements.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateMovementsPDF(ctx, "Historial de Movimientos", time.Now(), movements)
}

// ProductKardexPDF genera el kardex de un producto: todos sus movimientos con
// los snapshots de stock previo y posterior.
func (uc *UseCase) ProductKardexPDF(ctx context.Context, productID string) ([]byte, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movements.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateMovementsPDF(ctx, "Kardex: "+product.Name, time.Now(), movements)
}
