package readmodel_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/readmodel"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(int64, *order.Order) {}

type OrderReadModelIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   pgtest.Catalog
	readModel *readmodel.GormOrderReadModel
}

func (suite *OrderReadModelIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.readModel = readmodel.NewGormOrderReadModel(db)
}

func (suite *OrderReadModelIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	catalog, err := pgtest.Seed(suite.db)
	suite.Require().NoError(err)
	suite.catalog = catalog
}

func (suite *OrderReadModelIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderReadModelIntegrationTestSuite) TestListOrderSummaries_FiltersAndOrders() {
	ctx := context.Background()
	first := suite.placeOrder(1)
	second := suite.placeOrder(3)
	delivered := suite.placeOrder(2)
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET delivered = true WHERE id = ?", delivered).Error)

	views, err := suite.readModel.ListOrderSummaries(ctx, suite.catalog.ConsumerID, false)
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(second, views[0].OrderID)
	suite.Equal(first, views[1].OrderID)
	suite.Equal("Pizzeria", views[0].RestaurantName)
	suite.Equal("pizzeria.png", views[0].RestaurantImage)
	suite.Equal("pizza.png", views[0].CategoryImage)
	suite.Equal(kernel.Money(3500), views[0].Subtotal)
	suite.Equal(kernel.Money(4000), views[0].Total)
	suite.False(views[0].Delivered)
	suite.Nil(views[0].Items)

	views, err = suite.readModel.ListOrderSummaries(ctx, suite.catalog.ConsumerID, true)
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(delivered, views[0].OrderID)
	suite.True(views[0].Delivered)

	views, err = suite.readModel.ListOrderSummaries(ctx, suite.catalog.HomelessConsumer, false)
	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *OrderReadModelIntegrationTestSuite) TestListOrderItems_GroupsByOrder() {
	first := suite.placeOrder(1)
	second := suite.placeOrder(2)

	items, err := suite.readModel.ListOrderItems(context.Background(), []int64{first, second})
	suite.Require().NoError(err)

	suite.Require().Len(items[first], 2)
	suite.Equal("Margherita", items[first][0].ProductName)
	suite.Equal("margherita.png", items[first][0].ProductImage)
	suite.Equal(1, items[first][0].Quantity)
	suite.Equal(kernel.Money(1000), items[first][0].Subtotal)
	suite.Equal("Cola", items[first][1].ProductName)
	suite.Require().Len(items[second], 2)
	suite.Equal(2, items[second][0].Quantity)
}

func (suite *OrderReadModelIntegrationTestSuite) TestFindTotalsMismatches() {
	ctx := context.Background()
	healthy := suite.placeOrder(1)
	broken := suite.placeOrder(2)

	mismatches, err := suite.readModel.FindTotalsMismatches(ctx)
	suite.Require().NoError(err)
	suite.Empty(mismatches)

	suite.Require().NoError(suite.db.Exec("UPDATE order_items SET subtotal = subtotal + 1 WHERE order_id = ?", broken).Error)

	mismatches, err = suite.readModel.FindTotalsMismatches(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(mismatches, 1)
	suite.Equal(broken, mismatches[0].OrderID)
	suite.Equal(mismatches[0].Subtotal+2, mismatches[0].ItemsSubtotal)
	suite.NotEqual(healthy, mismatches[0].OrderID)
}

// placeOrder stores an order of consumer 1 with qty pizzas and one cola and
// returns its id.
func (suite *OrderReadModelIntegrationTestSuite) placeOrder(qty int) int64 {
	pizza, err := order.NewLineItem(suite.catalog.PizzaID, qty, 1000, kernel.Money(1000*qty))
	suite.Require().NoError(err)
	cola, err := order.NewLineItem(suite.catalog.ColaID, 1, 500, 500)
	suite.Require().NoError(err)

	subtotal := pizza.Subtotal() + cola.Subtotal()
	fee := kernel.Money(suite.catalog.DeliveryFeeCents)
	o, err := order.NewOrder(suite.catalog.ConsumerID, suite.catalog.RestaurantID,
		subtotal, fee, subtotal+fee, []order.LineItem{pizza, cola})
	suite.Require().NoError(err)

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, nopTracker{}).Add(context.Background(), o))
	return o.ID()
}

func TestOrderReadModelIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderReadModelIntegrationTestSuite))
}
