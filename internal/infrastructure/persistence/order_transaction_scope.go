package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apporder "github.com/baerenfell/backend/internal/application/order"
	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/order"
	"github.com/baerenfell/backend/internal/domain/shared"
)

// GormTransactionScope implements the order placement TransactionScope using
// GORM transactions. All repository operations within one Execute call share
// a transaction and commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Orders returns the order repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Orders() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Products returns the locking product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Products() apporder.LockingProductRepository {
	return NewGormLockingProductRepository(r.tx)
}

// GormLockingProductRepository extends the product repository with a
// SELECT ... FOR UPDATE read used by the order placement transaction.
type GormLockingProductRepository struct {
	*GormProductRepository
	db *gorm.DB
}

// NewGormLockingProductRepository creates a new GormLockingProductRepository.
func NewGormLockingProductRepository(db *gorm.DB) *GormLockingProductRepository {
	return &GormLockingProductRepository{
		GormProductRepository: NewGormProductRepository(db),
		db:                    db,
	}
}

// FindByIDForUpdate loads a product under a row lock. Concurrent placements
// for the same product serialize here until the transaction ends.
func (r *GormLockingProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Ensure GormTransactionScope implements TransactionScope
var _ apporder.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apporder.TransactionalRepositories = (*gormTransactionalRepositories)(nil)

// Ensure GormLockingProductRepository implements LockingProductRepository
var _ apporder.LockingProductRepository = (*GormLockingProductRepository)(nil)
