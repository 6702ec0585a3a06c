package order

import (
	"context"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/order"
	"github.com/google/uuid"
)

// TransactionScope provides transactional access to the repositories an order
// placement touches. All repository operations executed within one scope are
// part of the same database transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	// Orders returns the order repository scoped to the current transaction
	Orders() order.OrderRepository
	// Products returns the product repository scoped to the current
	// transaction, with row-locked reads for stock checks
	Products() LockingProductRepository
}

// LockingProductRepository extends the product repository with a row-locked
// read. Holding the lock serializes concurrent stock checks per product until
// the surrounding transaction ends.
type LockingProductRepository interface {
	catalog.ProductRepository

	// FindByIDForUpdate loads a product under a SELECT ... FOR UPDATE lock
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	orderRepo   order.OrderRepository
	productRepo LockingProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(orderRepo order.OrderRepository, productRepo LockingProductRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository.
func (s *NoOpTransactionScope) Orders() order.OrderRepository {
	return s.orderRepo
}

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() LockingProductRepository {
	return s.productRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
