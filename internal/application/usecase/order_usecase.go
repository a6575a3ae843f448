package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes de compra y venta. Los totales son
// aritmética simple: total de línea = cantidad * precio unitario, subtotal =
// suma de líneas, total = subtotal + impuesto informado.
type OrderUseCase struct {
	repo      repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, products: products, customers: customers, suppliers: suppliers}
}

// Create crea una orden en estado pendiente, denormalizando los nombres de
// producto y de cliente/proveedor al momento de la creación.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderType(in.Type) || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		ID:     uuid.New().String(),
		Type:   in.Type,
		Status: entity.OrderStatusPending,
		Tax:    in.Tax,
		Notes:  in.Notes,
	}

	switch in.Type {
	case entity.OrderTypeSale:
		if in.CustomerID == "" {
			return nil, domain.ErrInvalidInput
		}
		customer, err := uc.customers.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		order.CustomerID = customer.ID
		order.CustomerName = customer.Name
	case entity.OrderTypePurchase:
		if in.SupplierID == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier, err := uc.suppliers.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		order.SupplierID = supplier.ID
		order.SupplierName = supplier.Name
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	order.Subtotal = subtotal
	order.Total = subtotal.Add(order.Tax)

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes, más recientes primero; orderType y status filtran si
// no vienen vacíos.
func (uc *OrderUseCase) List(orderType, status string, limit, offset int) (*dto.OrderListResponse, error) {
	if orderType != "" && !entity.ValidOrderType(orderType) {
		return nil, domain.ErrInvalidInput
	}
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(orderType, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de la orden.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.repo.UpdateStatus(id, status, now); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = now
	return toOrderResponse(order), nil
}

// Delete elimina una orden.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		Type:         o.Type,
		Status:       o.Status,
		StatusLabel:  entity.OrderStatusLabel(o.Status),
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Items:        items,
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
