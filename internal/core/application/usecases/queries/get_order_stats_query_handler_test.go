package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	statsHandler queries.GetOrderStatsQueryHandler
	allHandler   queries.GetAllOrdersQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.statsHandler = queries.NewGetOrderStatsQueryHandler(db)
	suite.allHandler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) seedOrderWithStatus(status order.Status) {
	item, err := order.NewLineItem(kernel.NewUUID(), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, 100)
	suite.Require().NoError(err)
	if status != order.Pending {
		suite.Require().NoError(o.ChangeStatus(status))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ZeroFilled() {
	result, err := suite.statsHandler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(0), result.TotalCount)
	suite.Len(result.CountByStatus, 5)
	for _, count := range result.CountByStatus {
		suite.Equal(int64(0), count)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_CountsByStatus() {
	suite.seedOrderWithStatus(order.Pending)
	suite.seedOrderWithStatus(order.Pending)
	suite.seedOrderWithStatus(order.Shipped)
	suite.seedOrderWithStatus(order.Cancelled)

	result, err := suite.statsHandler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(4), result.TotalCount)
	suite.Equal(int64(2), result.CountByStatus[order.Pending])
	suite.Equal(int64(0), result.CountByStatus[order.Paid])
	suite.Equal(int64(1), result.CountByStatus[order.Shipped])
	suite.Equal(int64(0), result.CountByStatus[order.Delivered])
	suite.Equal(int64(1), result.CountByStatus[order.Cancelled])
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestGetAllOrders_PaginatesWithTotalCount() {
	for range 3 {
		suite.seedOrderWithStatus(order.Pending)
	}

	query, err := queries.NewGetAllOrdersQuery(2, 0)
	suite.Require().NoError(err)

	result, err := suite.allHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(3), result.TotalCount)
	suite.Require().Len(result.Orders, 2)
	suite.Equal(1, result.Orders[0].ItemCount)
	suite.Equal(order.Pending, result.Orders[0].Status)
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
