package order

import (
	"context"

	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID with items, surviving products and their
	// artists attached
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds all orders matching the filter, items eager-loaded
	// Supported filter key: status
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByCustomerEmail finds a customer's orders, newest first
	FindByCustomerEmail(ctx context.Context, email string, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order and its items
	Save(ctx context.Context, order *Order) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
