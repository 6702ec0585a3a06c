package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/baerenfell/backend/internal/domain/order"
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order placement and fulfilment operations
type OrderService struct {
	orderRepo order.OrderRepository
	txScope   TransactionScope
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, txScope TransactionScope) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
	}
}

// Place places a new order atomically: every requested product is loaded
// under a row lock, stock is validated and decremented, totals are computed
// from the locked prices and the order is inserted with snapshot items. Any
// failure rolls the whole transaction back.
func (s *OrderService) Place(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrEmptyOrder
	}

	newOrder, err := order.NewOrder(
		order.CustomerInfo{
			Email: req.CustomerEmail,
			Name:  req.CustomerName,
			Phone: req.CustomerPhone,
		},
		order.ShippingInfo{
			Address:    req.ShippingAddress,
			City:       req.ShippingCity,
			PostalCode: req.ShippingPostalCode,
			Country:    req.ShippingCountry,
		},
		req.CustomerNotes,
	)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, line := range req.Items {
			product, err := repos.Products().FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("PRODUCT_NOT_FOUND",
						fmt.Sprintf("Product %s not found", line.ProductID))
				}
				return err
			}

			item, err := order.NewOrderItem(product, line.Size, line.Quantity)
			if err != nil {
				return err
			}
			newOrder.AddItem(item)

			if err := product.DecrementStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
		}

		if err := newOrder.CalculateTotals(); err != nil {
			return err
		}

		return repos.Orders().Save(ctx, newOrder)
	})
	if err != nil {
		return nil, err
	}

	// Read-only refetch after commit so the response carries surviving
	// products and their artists
	placed, err := s.orderRepo.FindByID(ctx, newOrder.ID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(placed)
	return &response, nil
}

// GetByID retrieves an order. Non-admin callers only see their own orders.
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID, callerEmail string, isAdmin bool) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !o.BelongsTo(callerEmail) {
		return nil, shared.ErrForbidden
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves orders for the admin view, newest first
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		if !order.OrderStatus(filter.Status).IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// ListByCustomer retrieves the caller's own orders, newest first
func (s *OrderService) ListByCustomer(ctx context.Context, email string) ([]OrderResponse, error) {
	if email == "" {
		return nil, shared.ErrUnauthorized
	}

	filter := shared.Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	orders, err := s.orderRepo.FindByCustomerEmail(ctx, email, filter)
	if err != nil {
		return nil, err
	}

	return ToOrderResponses(orders), nil
}

// UpdateStatus moves an order along the fulfilment machine and optionally
// attaches a tracking number and admin notes
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	target := order.OrderStatus(req.Status)
	if target != o.Status {
		if err := o.TransitionTo(target); err != nil {
			return nil, err
		}
	}

	if req.TrackingNumber != nil {
		o.SetTrackingNumber(*req.TrackingNumber)
	}
	if req.AdminNotes != nil {
		o.SetAdminNotes(*req.AdminNotes)
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}
