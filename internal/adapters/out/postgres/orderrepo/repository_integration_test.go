package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasteleria/internal/adapters/out/postgres/orderrepo"
	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.AssignmentDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Torta de Chocolate",
		2,
		decimal.RequireFromString("12.50"),
	)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Av. Los Pinos 123",
		"tocar el timbre",
		[]order.Item{item},
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(o.ID()))
	suite.True(restored.CustomerID().IsEqual(o.CustomerID()))
	suite.Equal(order.Pendiente, restored.Status())
	suite.Equal("Av. Los Pinos 123", restored.DireccionEntrega())
	suite.Equal("tocar el timbre", restored.Notas())
	suite.True(restored.Total().Equal(decimal.RequireFromString("25.00")))
	suite.Require().Len(restored.Items(), 1)
	suite.Equal("Torta de Chocolate", restored.Items()[0].NombreProducto())
	suite.Equal(2, restored.Items()[0].Cantidad())
	suite.Nil(restored.Assignment())
	suite.Equal(1, restored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionBumpsVersion() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.TransitionTo(order.EnPreparacion))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.EnPreparacion, reloaded.Status())
	suite.Equal(2, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionRejected() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.TransitionTo(order.EnPreparacion))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second copy still carries the old version and must be rejected.
	suite.Require().NoError(second.TransitionTo(order.Cancelado))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.EnPreparacion, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	ctx := context.Background()
	o := suite.newOrder()

	err := suite.repository.Update(ctx, o)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignment() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	deliveryID := kernel.NewUUID()
	assignment, err := order.NewAssignment(deliveryID, "Pedro Reparto", "+51 999 888 777")
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AssignDelivery(assignment))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.Assignment())
	suite.True(reloaded.Assignment().DeliveryID().IsEqual(deliveryID))
	suite.Equal("Pedro Reparto", reloaded.Assignment().NombreDelivery())
	suite.Nil(reloaded.Assignment().FechaEntrega())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredStampsFechaEntrega() {
	ctx := context.Background()
	o := suite.newOrder()

	deliveryID := kernel.NewUUID()
	assignment, err := order.NewAssignment(deliveryID, "Pedro Reparto", "")
	suite.Require().NoError(err)
	suite.Require().NoError(o.AssignDelivery(assignment))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	for _, estado := range []order.Status{
		order.EnPreparacion, order.PorEntregar, order.EnCamino, order.Entregado,
	} {
		suite.Require().NoError(loaded.TransitionTo(estado))
	}
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Entregado, reloaded.Status())
	suite.Require().NotNil(reloaded.Assignment())
	suite.NotNil(reloaded.Assignment().FechaEntrega())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
