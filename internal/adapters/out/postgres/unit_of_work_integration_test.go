package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactoryAdapter narrows ports.UnitOfWorkFactory to the factory shapes
// the command handlers accept.
type uowFactoryAdapter struct {
	factory ports.UnitOfWorkFactory
}

func (a uowFactoryAdapter) Create() commands.UoW {
	return a.factory.Create()
}

type orderUoWFactoryAdapter struct {
	factory ports.UnitOfWorkFactory
}

func (a orderUoWFactoryAdapter) Create() commands.OrderUoW {
	return a.factory.Create()
}

type memberUoWFactoryAdapter struct {
	factory ports.UnitOfWorkFactory
}

func (a memberUoWFactoryAdapter) Create() commands.MemberUoW {
	return a.factory.Create()
}

type itemUoWFactoryAdapter struct {
	factory ports.UnitOfWorkFactory
}

func (a itemUoWFactoryAdapter) Create() commands.ItemUoW {
	return a.factory.Create()
}

// UnitOfWorkIntegrationTestSuite runs the write-side flows end to end
// against a real PostgreSQL database: placing, cancelling and delivering
// orders through the command handlers and the GORM unit of work.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.LineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, deliveries, order_lines, members, items").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.MemberRepository())
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Commit and rollback without an active transaction fail
	suite.Error(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	book, err := item.NewItem(kernel.NewUUID(), item.KindBook, "Book A", 10000, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, book))

	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&itemrepo.ItemDTO{}).Count(&count).Error)
	suite.Zero(count)
}

// seedCatalog creates a member and an item through the command handlers and
// returns their IDs.
func (suite *UnitOfWorkIntegrationTestSuite) seedCatalog() (kernel.UUID, kernel.UUID) {
	ctx := context.Background()

	memberID := kernel.NewUUID()
	address, err := kernel.NewAddress("Seoul", "Somewhere", "123123")
	suite.Require().NoError(err)
	createMember, err := commands.NewCreateMemberCommand(memberID, "member1", address)
	suite.Require().NoError(err)
	memberHandler := commands.NewCreateMemberCommandHandler(memberUoWFactoryAdapter{suite.factory})
	suite.Require().NoError(memberHandler.Handle(ctx, createMember))

	itemID := kernel.NewUUID()
	createItem, err := commands.NewCreateItemCommand(itemID, item.KindBook, "Book A", 10000, 10)
	suite.Require().NoError(err)
	itemHandler := commands.NewCreateItemCommandHandler(itemUoWFactoryAdapter{suite.factory})
	suite.Require().NoError(itemHandler.Handle(ctx, createItem))

	return memberID, itemID
}

func (suite *UnitOfWorkIntegrationTestSuite) getItemStock(itemID kernel.UUID) int {
	stored, err := suite.factory.Create().ItemRepository().Get(context.Background(), itemID)
	suite.Require().NoError(err)
	return stored.Stock()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPlaceOrder_EndToEnd() {
	ctx := context.Background()
	memberID, itemID := suite.seedCatalog()

	orderID := kernel.NewUUID()
	placedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	placeOrder, err := commands.NewPlaceOrderCommand(orderID, memberID, itemID, 2)
	suite.Require().NoError(err)

	handler := commands.NewPlaceOrderCommandHandlerWithClock(
		uowFactoryAdapter{suite.factory},
		func() time.Time { return placedAt },
	)
	suite.Require().NoError(handler.Handle(ctx, placeOrder))

	suite.Equal(8, suite.getItemStock(itemID))

	placed, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Placed, placed.Status())
	suite.Equal(memberID, placed.MemberID())
	suite.Equal(20000, placed.TotalPrice())
	suite.Equal(order.Ready, placed.Delivery().Status())
	suite.Equal("Seoul", placed.Delivery().Address().City())
	suite.Require().Len(placed.Lines(), 1)
	suite.Equal(itemID, placed.Lines()[0].ItemID())
	suite.True(placed.PlacedAt().Equal(placedAt))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPlaceOrder_InsufficientStock_NothingPersists() {
	ctx := context.Background()
	memberID, itemID := suite.seedCatalog()

	orderID := kernel.NewUUID()
	placeOrder, err := commands.NewPlaceOrderCommand(orderID, memberID, itemID, 11)
	suite.Require().NoError(err)

	handler := commands.NewPlaceOrderCommandHandler(uowFactoryAdapter{suite.factory})
	err = handler.Handle(ctx, placeOrder)
	suite.Require().ErrorIs(err, item.ErrInsufficientStock)

	suite.Equal(10, suite.getItemStock(itemID))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCancelOrder_RestoresStock() {
	ctx := context.Background()
	memberID, itemID := suite.seedCatalog()

	orderID := kernel.NewUUID()
	placeOrder, err := commands.NewPlaceOrderCommand(orderID, memberID, itemID, 2)
	suite.Require().NoError(err)
	placeHandler := commands.NewPlaceOrderCommandHandler(uowFactoryAdapter{suite.factory})
	suite.Require().NoError(placeHandler.Handle(ctx, placeOrder))
	suite.Equal(8, suite.getItemStock(itemID))

	cancelOrder, err := commands.NewCancelOrderCommand(orderID)
	suite.Require().NoError(err)
	cancelHandler := commands.NewCancelOrderCommandHandler(uowFactoryAdapter{suite.factory})
	suite.Require().NoError(cancelHandler.Handle(ctx, cancelOrder))

	suite.Equal(10, suite.getItemStock(itemID))

	cancelled, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, cancelled.Status())

	// A second cancellation is rejected and restores nothing
	err = cancelHandler.Handle(ctx, cancelOrder)
	suite.Require().ErrorIs(err, order.ErrIllegalCancellation)
	suite.Equal(10, suite.getItemStock(itemID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeliveryLifecycle_BlocksLateCancellation() {
	ctx := context.Background()
	memberID, itemID := suite.seedCatalog()

	orderID := kernel.NewUUID()
	placeOrder, err := commands.NewPlaceOrderCommand(orderID, memberID, itemID, 2)
	suite.Require().NoError(err)
	placeHandler := commands.NewPlaceOrderCommandHandler(uowFactoryAdapter{suite.factory})
	suite.Require().NoError(placeHandler.Handle(ctx, placeOrder))

	shipCmd, err := commands.NewShipDeliveryCommand(orderID)
	suite.Require().NoError(err)
	shipHandler := commands.NewShipDeliveryCommandHandler(orderUoWFactoryAdapter{suite.factory})
	suite.Require().NoError(shipHandler.Handle(ctx, shipCmd))

	completeCmd, err := commands.NewCompleteDeliveryCommand(orderID)
	suite.Require().NoError(err)
	completeHandler := commands.NewCompleteDeliveryCommandHandler(orderUoWFactoryAdapter{suite.factory})
	suite.Require().NoError(completeHandler.Handle(ctx, completeCmd))

	delivered, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Completed, delivered.Delivery().Status())

	cancelCmd, err := commands.NewCancelOrderCommand(orderID)
	suite.Require().NoError(err)
	cancelHandler := commands.NewCancelOrderCommandHandler(uowFactoryAdapter{suite.factory})
	err = cancelHandler.Handle(ctx, cancelCmd)
	suite.Require().ErrorIs(err, order.ErrIllegalCancellation)
	suite.Require().ErrorIs(err, order.ErrDeliveryAlreadyCompleted)

	suite.Equal(8, suite.getItemStock(itemID))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
