package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"configurator/internal/adapters/out/postgres/migrations"
	"configurator/internal/adapters/out/postgres/orderrepo"
	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/services"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker records the orders a repository reports as saved.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate *order.Order) {
	m.Called(aggregate)
}

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

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(sqlDB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndPersistsFigures() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", o).Once()

	err := suite.repository.Add(ctx, o)

	suite.Require().NoError(err)
	suite.Positive(o.ID())
	suite.assertCount("orders", 1)
	suite.assertCount("order_figures", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateSubmissionKey_ReturnsConflict() {
	ctx := context.Background()
	key := kernel.NewUUID()
	first := suite.newOrder(key, time.Now().UTC())
	second := suite.newOrder(key, time.Now().UTC())
	suite.tracker.On("TrackAggregate", first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Zero(second.ID())
	suite.assertCount("orders", 1)
	suite.assertCount("order_figures", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount("orders", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsEveryField() {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	original := suite.newOrder(kernel.NewUUID(), createdAt)
	suite.tracker.On("TrackAggregate", original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())

	suite.Require().NoError(err)
	suite.Equal(original.ID(), got.ID())
	suite.True(original.SubmissionKey().IsEqual(got.SubmissionKey()))
	suite.Equal(order.Pending, got.Status())
	suite.Equal(original.Plan().Params(), got.Plan().Params())
	suite.Equal(int64(11500), got.TotalPrice())
	suite.Equal(1, got.ExtraAccessoriesCount())
	suite.Equal(selection.ItemID(7), got.AddOns().PetID())
	suite.Equal("bg-upload-1", got.AddOns().CustomBackground())
	suite.Equal(original.Customer().Form(), got.Customer().Form())
	suite.True(createdAt.Equal(got.CreatedAt()))
	suite.Empty(got.DomainEvents())

	figures := got.Figures()
	suite.Require().Len(figures, 2)
	suite.Equal(1, figures[0].Number())
	suite.Equal([]selection.ItemID{52, 51}, figures[0].Accessories())
	suite.Equal(selection.Female, figures[0].Sex())
	suite.Equal(3, figures[1].Number())
	suite.Equal([]selection.ItemID{53}, figures[1].Accessories())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), 999)

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetBySubmissionKey() {
	ctx := context.Background()
	key := kernel.NewUUID()
	o := suite.newOrder(key, time.Now().UTC())
	suite.tracker.On("TrackAggregate", o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetBySubmissionKey(ctx, key)
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())

	_, err = suite.repository.GetBySubmissionKey(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	changed, err := o.ChangeStatus(order.Processing, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().True(changed)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, got.Status())
	suite.Len(got.Figures(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	o := suite.newOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(o.AssignID(12345))

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		repo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
		got, err := repo.GetForUpdate(ctx, o.ID())
		if err != nil {
			return err
		}
		suite.Equal(o.ID(), got.ID())
		suite.Len(got.Figures(), 2)
		return nil
	})

	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []int64
	for i := range 3 {
		o := suite.newOrder(kernel.NewUUID(), base.Add(time.Duration(i)*time.Hour))
		suite.tracker.On("TrackAggregate", o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
		ids = append(ids, o.ID())
	}

	got, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal(ids[2], got[0].ID())
	suite.Equal(ids[1], got[1].ID())
	suite.Equal(ids[0], got[2].ID())
	for _, o := range got {
		suite.Len(o.Figures(), 2)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_Empty() {
	got, err := suite.repository.List(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

// newOrder builds a pending order on a three-figure plan with figures 1 and 3
// configured, a pet and a custom background: 10000 + 500 + 1000.
func (suite *OrderRepositoryIntegrationTestSuite) newOrder(key kernel.UUID, at time.Time) *order.Order {
	p, err := plan.NewPlan(plan.Params{
		ID: "trio", Name: "Trío", Price: 10000, MaxFigures: 3, MaxAccsPerFigure: 1, AccExtraCost: 500, AllowsExtra: true,
	})
	suite.Require().NoError(err)

	s, err := selection.NewStore(3)
	suite.Require().NoError(err)
	for fig, accs := range map[int][]selection.ItemID{1: {52, 51}, 3: {53}} {
		suite.Require().NoError(s.SetSex(fig, selection.Female))
		suite.Require().NoError(s.SetAttribute(fig, selection.Hair, 11))
		suite.Require().NoError(s.SetAttribute(fig, selection.Face, 21))
		suite.Require().NoError(s.SetAttribute(fig, selection.Body, 31))
		suite.Require().NoError(s.SetAttribute(fig, selection.Legs, 41))
		for _, id := range accs {
			suite.Require().NoError(s.ToggleAccessory(fig, id))
		}
	}
	suite.Require().NoError(s.SetPet(7))
	suite.Require().NoError(s.SetCustomBackground("bg-upload-1"))

	info, err := customer.NewInfo(customer.Form{
		Name: "Camila Rojas", Email: "camila@example.cl", Phone: "+56 9 8765 4321",
		RUT: "12.345.678-5", Region: "Valparaíso", Comuna: "Viña del Mar",
		Address: "Av. Libertad 1234", Note: "Regalo",
	})
	suite.Require().NoError(err)

	o, err := services.NewOrderAssembler().Assemble(key, p, s, info, at)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
