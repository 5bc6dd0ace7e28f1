package cmd

import (
	"errors"
	"log/slog"
	"strings"

	httpin "configurator/internal/adapters/in/http"
	"configurator/internal/adapters/out/email"
	"configurator/internal/adapters/out/kafka"
	"configurator/internal/adapters/out/postgres"
	"configurator/internal/adapters/out/redis/draftrepo"
	"configurator/internal/core/application/usecases/commands"
	"configurator/internal/core/application/usecases/queries"
	"configurator/internal/core/ports"
	"configurator/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	drafts     *draftrepo.RedisDraftRepository
	publisher  eventPublisher
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var publisher eventPublisher
	if configs.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher(strings.Split(configs.KafkaHost, ","), configs.KafkaOrderChangedTopic)
	} else {
		publisher = kafka.NewNoopPublisher(logger)
	}

	var notifier ports.Notifier
	if configs.ResendAPIKey != "" {
		notifier = email.NewResendNotifier(email.Config{
			APIKey:     configs.ResendAPIKey,
			From:       configs.EmailFrom,
			AdminEmail: configs.AdminEmail,
		}, logger)
	} else {
		notifier = email.NewNoopNotifier(logger)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		drafts:     draftrepo.NewRedisDraftRepository(redisClient, configs.DraftTTL),
		publisher:  publisher,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderEventUoWFactory() commands.OrderEventUoWFactory {
	return FuncOrderEventUoWFactory(func() commands.OrderEventUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartDraftCommandHandler() commands.StartDraftCommandHandler {
	return commands.NewStartDraftCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateApplyDraftActionCommandHandler() commands.ApplyDraftActionCommandHandler {
	return commands.NewApplyDraftActionCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateConfirmDraftCommandHandler() commands.ConfirmDraftCommandHandler {
	return commands.NewConfirmDraftCommandHandler(c.drafts, c.orderUoWFactory(), c.configs.SubmissionLockTTL, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderEventsCommandHandler() commands.DispatchOrderEventsCommandHandler {
	return commands.NewDispatchOrderEventsCommandHandler(
		c.orderEventUoWFactory(), c.publisher, c.notifier, c.configs.DispatchMaxAttempts, c.logger,
	)
}

func (c *CompositionRoot) CreatePurgeDispatchedEventsCommandHandler() commands.PurgeDispatchedEventsCommandHandler {
	return commands.NewPurgeDispatchedEventsCommandHandler(c.orderEventUoWFactory())
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.drafts)
}

// Order reads run outside a transaction, straight on the pool.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		StartDraft:        c.CreateStartDraftCommandHandler(),
		ApplyDraftAction:  c.CreateApplyDraftActionCommandHandler(),
		ConfirmDraft:      c.CreateConfirmDraftCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		GetDraft:          c.CreateGetDraftQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrderStats:     c.CreateGetOrderStatsQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, httpin.NewAdminAuthenticator(c.configs.AdminJWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	dispatchHandler := c.CreateDispatchOrderEventsCommandHandler()
	purgeHandler := c.CreatePurgeDispatchedEventsCommandHandler()

	return jobs.NewJobManager(&dispatchHandler, &purgeHandler, jobs.Config{
		DispatchSchedule: c.configs.DispatchSchedule,
		DispatchBatch:    c.configs.DispatchBatch,
		PurgeSchedule:    c.configs.PurgeSchedule,
		EventRetention:   c.configs.EventRetention,
	}, c.logger)
}

// Close releases the outbound connections.
func (c *CompositionRoot) Close() error {
	var errs []error
	if err := c.publisher.Close(); err != nil {
		errs = append(errs, err)
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderEventUoWFactory func() commands.OrderEventUoW

func (f FuncOrderEventUoWFactory) Create() commands.OrderEventUoW {
	return f()
}
