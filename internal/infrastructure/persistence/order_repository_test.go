package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baerenfell/backend/internal/domain/order"
	"github.com/baerenfell/backend/internal/domain/shared"
)

func orderRows(orderID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "version", "order_number", "status", "customer_email", "customer_name", "subtotal", "shipping_cost", "tax", "total"}).
		AddRow(orderID, 1, "BF-20260830-1234", "pending", "anna@example.ch", "Anna Muster",
			decimal.RequireFromString("90.00"), decimal.RequireFromString("7.00"),
			decimal.RequireFromString("6.93"), decimal.RequireFromString("103.93"))
}

func emptyOrderItemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity"})
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		order.CustomerInfo{Email: "anna@example.ch", Name: "Anna Muster"},
		order.ShippingInfo{Address: "Bundesgasse 1", City: "Bern", PostalCode: "3011"},
		"",
	)
	require.NoError(t, err)
	return o
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds order with items preloaded", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(orderRows(orderID))
		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
			WithArgs(orderID).
			WillReturnRows(emptyOrderItemRows())

		o, err := repo.FindByID(context.Background(), orderID)

		assert.NoError(t, err)
		assert.Equal(t, "BF-20260830-1234", o.OrderNumber)
		assert.Equal(t, order.OrderStatusPending, o.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing order", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		o, err := repo.FindByID(context.Background(), orderID)

		assert.Nil(t, o)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormOrderRepository_FindByOrderNumber(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	orderID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE order_number = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("BF-20260830-1234", 1).
		WillReturnRows(orderRows(orderID))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
		WithArgs(orderID).
		WillReturnRows(emptyOrderItemRows())

	o, err := repo.FindByOrderNumber(context.Background(), "BF-20260830-1234")

	assert.NoError(t, err)
	assert.Equal(t, orderID, o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_FindByCustomerEmail(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	orderID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE LOWER\(customer_email\) = LOWER\(\$1\) ORDER BY created_at DESC`).
		WithArgs("Anna@Example.CH").
		WillReturnRows(orderRows(orderID))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
		WithArgs(orderID).
		WillReturnRows(emptyOrderItemRows())

	orders, err := repo.FindByCustomerEmail(context.Background(), "Anna@Example.CH", shared.Filter{})

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_FindAll(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	orderID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs("pending").
		WillReturnRows(orderRows(orderID))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
		WithArgs(orderID).
		WillReturnRows(emptyOrderItemRows())

	filter := shared.Filter{Filters: map[string]interface{}{"status": "pending"}}
	orders, err := repo.FindAll(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Save(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	o := newTestOrder(t)
	o.Items = []order.OrderItem{
		{
			ID:          uuid.New(),
			ProductID:   uuid.New(),
			ProductName: "Bear Shirt",
			Size:        "M",
			Quantity:    2,
			Price:       decimal.RequireFromString("45.00"),
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE "id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "order_items" WHERE order_id = \$1 AND id NOT IN \(\$2\)`).
		WithArgs(o.ID, o.Items[0].ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "order_items" SET .+ WHERE "id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), o)

	assert.NoError(t, err)
	assert.Equal(t, o.ID, o.Items[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_Count(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1`).
		WithArgs("shipped").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	filter := shared.Filter{Filters: map[string]interface{}{"status": "shipped"}}
	count, err := repo.Count(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
