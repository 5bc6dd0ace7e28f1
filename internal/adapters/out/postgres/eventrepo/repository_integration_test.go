package eventrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"configurator/internal/adapters/out/postgres/eventrepo"
	"configurator/internal/adapters/out/postgres/migrations"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderEventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *eventrepo.GormOrderEventRepository
	orderID    int64
}

func (suite *OrderEventRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.repository = eventrepo.NewGormOrderEventRepository(db)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error)

	// Events reference an order; a bare row is enough here.
	err := suite.db.Raw(`
		INSERT INTO orders (
			submission_key, status, plan_id, plan_name, plan_price, plan_max_figures,
			plan_max_accs_per_figure, plan_acc_extra_cost, total_price, extra_accessories_count,
			customer_name, customer_email, customer_phone, customer_rut, customer_region,
			customer_comuna, created_at, updated_at
		) VALUES (
			gen_random_uuid(), 'pending', 'solo', 'Solo', 10000, 1, 1, 500, 10000, 0,
			'Camila Rojas', 'camila@example.cl', '987654321', '12345678-5', 'Valparaíso',
			'Viña del Mar', NOW(), NOW()
		) RETURNING id
	`).Scan(&suite.orderID).Error
	suite.Require().NoError(err)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestAppendAndGetUnprocessed_OldestFirst() {
	ctx := context.Background()
	suite.append(`{"n":1}`)
	suite.append(`{"n":2}`)
	suite.append(`{"n":3}`)

	events, err := suite.repository.GetUnprocessed(ctx, 2, 5)

	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Less(events[0].ID, events[1].ID)
	suite.Equal(suite.orderID, events[0].OrderID)
	suite.Equal("order.confirmed", events[0].Type)
	suite.JSONEq(`{"n":1}`, string(events[0].Payload))
	suite.Zero(events[0].Attempts)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestAppend_RejectsInvalidInput() {
	ctx := context.Background()

	suite.Require().ErrorIs(suite.repository.Append(ctx, 0, "order.confirmed", []byte(`{}`), time.Now()), errs.ErrValueIsOutOfRange)
	suite.Require().ErrorIs(suite.repository.Append(ctx, suite.orderID, "", []byte(`{}`), time.Now()), errs.ErrValueIsRequired)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestMarkProcessed_HidesEvent() {
	ctx := context.Background()
	suite.append(`{}`)
	events, err := suite.repository.GetUnprocessed(ctx, 10, 5)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)

	suite.Require().NoError(suite.repository.MarkProcessed(ctx, events[0].ID))

	events, err = suite.repository.GetUnprocessed(ctx, 10, 5)
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestMarkFailed_CountsAttemptsUntilExhausted() {
	ctx := context.Background()
	suite.append(`{}`)
	events, err := suite.repository.GetUnprocessed(ctx, 10, 2)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	id := events[0].ID

	suite.Require().NoError(suite.repository.MarkFailed(ctx, id, "broker unavailable"))

	events, err = suite.repository.GetUnprocessed(ctx, 10, 2)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(1, events[0].Attempts)

	suite.Require().NoError(suite.repository.MarkFailed(ctx, id, strings.Repeat("é", 1000)))

	events, err = suite.repository.GetUnprocessed(ctx, 10, 2)
	suite.Require().NoError(err)
	suite.Empty(events, "events past the attempt limit are left alone")

	var lastError string
	suite.Require().NoError(suite.db.Raw("SELECT last_error FROM order_events WHERE id = ?", id).Scan(&lastError).Error)
	suite.LessOrEqual(len(lastError), 1024)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestMark_UnknownEvent_ReturnsNotFound() {
	ctx := context.Background()

	suite.Require().ErrorIs(suite.repository.MarkProcessed(ctx, 999), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.MarkFailed(ctx, 999, "x"), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.MarkNotified(ctx, 999), errs.ErrObjectNotFound)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestMarkNotified_KeepsEventPending() {
	ctx := context.Background()
	suite.append(`{}`)
	events, err := suite.repository.GetUnprocessed(ctx, 10, 5)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.False(events[0].Notified)

	suite.Require().NoError(suite.repository.MarkNotified(ctx, events[0].ID))
	suite.Require().NoError(suite.repository.MarkFailed(ctx, events[0].ID, "broker unavailable"))

	events, err = suite.repository.GetUnprocessed(ctx, 10, 5)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.True(events[0].Notified)
	suite.Equal(1, events[0].Attempts)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) TestDeleteProcessedBefore() {
	ctx := context.Background()
	suite.append(`{"n":1}`)
	suite.append(`{"n":2}`)
	suite.append(`{"n":3}`)
	events, err := suite.repository.GetUnprocessed(ctx, 10, 5)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)

	suite.Require().NoError(suite.repository.MarkProcessed(ctx, events[0].ID))
	suite.Require().NoError(suite.repository.MarkProcessed(ctx, events[1].ID))
	suite.Require().NoError(suite.db.Exec(
		"UPDATE order_events SET processed_at = NOW() - INTERVAL '10 days' WHERE id = ?", events[0].ID,
	).Error)

	deleted, err := suite.repository.DeleteProcessedBefore(ctx, time.Now().Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	var remaining int64
	suite.Require().NoError(suite.db.Table("order_events").Count(&remaining).Error)
	suite.Equal(int64(2), remaining)
}

func (suite *OrderEventRepositoryIntegrationTestSuite) append(payload string) {
	err := suite.repository.Append(context.Background(), suite.orderID, "order.confirmed", []byte(payload), time.Now().UTC())
	suite.Require().NoError(err)
}

func TestOrderEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderEventRepositoryIntegrationTestSuite))
}
