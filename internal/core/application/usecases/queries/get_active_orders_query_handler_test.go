package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func makeOrder(s *suite.Suite, email string, prices ...string) *order.Order {
	addr, err := kernel.NewEmail(email)
	s.Require().NoError(err)

	items := make([]*order.LineItem, 0, len(prices))
	for i, p := range prices {
		price, priceErr := kernel.MoneyFromString(p)
		s.Require().NoError(priceErr)

		item, itemErr := order.NewLineItem(kernel.NewUUID(), "Product", i+1, price)
		s.Require().NoError(itemErr)
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), addr, items)
	s.Require().NoError(err)
	return aggregate
}

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersWithItems() {
	ctx := context.Background()
	aggregate := makeOrder(&suite.Suite, "a@b.com", "10.00", "2.50")
	err := suite.orderRepo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(aggregate.ID()))
	suite.Equal("a@b.com", result[0].CustomerEmail)
	suite.Equal("pending", result[0].Status)
	suite.Equal("15.00", result[0].Total)
	suite.Require().Len(result[0].Items, 2)

	subtotals := make(map[string]string)
	for _, item := range result[0].Items {
		subtotals[item.UnitPrice] = item.Subtotal
	}
	suite.Equal("10.00", subtotals["10.00"]) // 1 × 10.00
	suite.Equal("5.00", subtotals["2.50"])   // 2 × 2.50
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesSoftDeletedOrders() {
	ctx := context.Background()

	active := makeOrder(&suite.Suite, "a@b.com", "10.00")
	suite.Require().NoError(suite.orderRepo.Add(ctx, active))

	deleted := makeOrder(&suite.Suite, "b@b.com", "10.00")
	suite.Require().NoError(suite.orderRepo.Add(ctx, deleted))
	deleted.MarkDeleted()
	suite.Require().NoError(suite.orderRepo.Update(ctx, deleted))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(active.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	ctx := context.Background()

	older := makeOrder(&suite.Suite, "a@b.com", "10.00")
	suite.Require().NoError(suite.orderRepo.Add(ctx, older))

	// Push the first order into the past so ordering is unambiguous.
	err := suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", older.ID().Bytes()).
		Update("created_at", time.Now().UTC().Add(-time.Hour)).Error
	suite.Require().NoError(err)

	newer := makeOrder(&suite.Suite, "b@b.com", "10.00")
	suite.Require().NoError(suite.orderRepo.Add(ctx, newer))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
