package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "webshop/internal/adapters/out/postgres"
	"webshop/internal/adapters/out/postgres/orderrepo"
	"webshop/internal/adapters/out/postgres/productrepo"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/product"
	"webshop/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items, products RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ProductRepository(), "First instance should provide product repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.ProductRepository(), "Second instance should provide product repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderPlacementWorkflow exercises the full write path of an
// order: decrement stock at two locations and insert the order atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPlacementWorkflow() {
	ctx := context.Background()

	// Seed the catalog outside the transaction
	seedUow := suite.factory.Create()
	cologne := createStockRecord(2, kernel.Cologne, 200, 1)
	frankfurt := createStockRecord(2, kernel.Frankfurt, 200, 5)
	suite.Require().NoError(addRecord(ctx, seedUow, cologne))
	suite.Require().NoError(addRecord(ctx, seedUow, frankfurt))

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Decrement both records within the transaction
	records, err := uow.ProductRepository().GetByProductID(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)

	suite.Require().NoError(records[0].ReduceQuantity(1))
	suite.Require().NoError(records[1].ReduceQuantity(3))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, records[0]))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, records[1]))

	// Insert the order in the same transaction
	testOrder := createTestOrder()
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(testOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetByID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	retrievedRecords, err := newUow.ProductRepository().GetByProductID(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(retrievedRecords, 2)
	suite.Equal(0, retrievedRecords[0].Quantity())
	suite.Equal(2, retrievedRecords[1].Quantity())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()

	// Seed one record outside the transaction
	seedUow := suite.factory.Create()
	record := createStockRecord(1, kernel.Munich, 100, 10)
	suite.Require().NoError(addRecord(ctx, seedUow, record))

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Decrement stock and add an order within the transaction
	records, err := uow.ProductRepository().GetByProductID(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Require().NoError(records[0].ReduceQuantity(10))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, records[0]))

	testOrder := createTestOrder()
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify changes are visible within the transaction
	inTx, err := uow.ProductRepository().GetByProductID(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(0, inTx[0].Quantity())

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().GetByID(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	afterRollback, err := newUow.ProductRepository().GetByProductID(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(afterRollback, 1)
	suite.Equal(10, afterRollback[0].Quantity(), "Stock should be restored after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := createTestOrder()
	order2 := createTestOrder()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().GetByID(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow2.OrderRepository().GetByID(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().GetByID(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().GetByID(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().GetByID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().GetByID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	li, _ := order.NewLineItem(2, 4)
	testOrder, _ := order.NewOrder([]order.LineItem{li})
	testOrder.SetOrderCost(800)
	testOrder.StampTimestamp(time.Now())
	return testOrder
}

// createStockRecord creates a valid catalog record for testing purposes.
func createStockRecord(id int, location kernel.Location, price float64, quantity int) *product.Product {
	record, _ := product.NewProduct(id, location, "test product", &price, quantity)
	return record
}

// addRecord seeds a catalog record through the unit of work's repository.
func addRecord(ctx context.Context, uow ports.UnitOfWork, record *product.Product) error {
	repo, ok := uow.ProductRepository().(*productrepo.GormProductRepository)
	if !ok {
		panic("unexpected product repository implementation")
	}
	return repo.Add(ctx, record)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
