package commands_test

import (
	"context"
	"time"

	"configurator/internal/core/application/usecases/commands"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetBySubmissionKey(ctx context.Context, key kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, key)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderEventRepository struct{ mock.Mock }

func (m *MockOrderEventRepository) GetUnprocessed(ctx context.Context, limit, maxAttempts int) ([]ports.OrderEvent, error) {
	args := m.Called(ctx, limit, maxAttempts)
	events, _ := args.Get(0).([]ports.OrderEvent)
	return events, args.Error(1)
}

func (m *MockOrderEventRepository) MarkProcessed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderEventRepository) MarkNotified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderEventRepository) MarkFailed(ctx context.Context, id int64, cause string) error {
	args := m.Called(ctx, id, cause)
	return args.Error(0)
}

func (m *MockOrderEventRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderEventUoW struct{ mock.Mock }

func (m *MockOrderEventUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderEventUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderEventUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderEventUoW) OrderEventRepository() ports.OrderEventRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderEventRepository)
}

type MockOrderEventUoWFactory struct{ mock.Mock }

func (m *MockOrderEventUoWFactory) Create() commands.OrderEventUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderEventUoW)
}

type MockDraftStore struct{ mock.Mock }

func (m *MockDraftStore) Get(ctx context.Context, id kernel.UUID) (wizard.Draft, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(wizard.Draft)
	return d, args.Error(1)
}

func (m *MockDraftStore) Save(ctx context.Context, d wizard.Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// Update feeds the draft given to Return into change, the way the store does.
func (m *MockDraftStore) Update(ctx context.Context, id kernel.UUID, change ports.DraftChange) (wizard.Draft, error) {
	args := m.Called(ctx, id)
	stored, _ := args.Get(0).(wizard.Draft)
	if err := args.Error(1); err != nil {
		return stored, err
	}
	next, err := change(stored)
	if err != nil {
		return stored, err
	}
	return next, nil
}

func (m *MockDraftStore) AcquireSubmission(ctx context.Context, id kernel.UUID, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, id, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockDraftStore) ReleaseSubmission(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderConfirmed(ctx context.Context, n ports.OrderNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
