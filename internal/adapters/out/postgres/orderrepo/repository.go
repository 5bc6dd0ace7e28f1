package orderrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects saved orders so their events can be stored on commit.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its figures and assigns the generated id.
// An order already stored under the same submission key is a conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	figures := dto.Figures
	dto.ID = 0
	dto.Figures = nil
	dto.UpdatedAt = dto.CreatedAt

	db := r.db.WithContext(ctx)

	result := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "submission_key"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("submission key " + aggregate.SubmissionKey().String() + " is already used")
	}

	if len(figures) > 0 {
		for i := range figures {
			figures[i].OrderID = dto.ID
		}
		if err := db.Create(&figures).Error; err != nil {
			return err
		}
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the status of an existing order. Figures never change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", strconv.FormatInt(aggregate.ID(), 10))
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) GetBySubmissionKey(ctx context.Context, key kernel.UUID) (*order.Order, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := withFigures(r.db.WithContext(ctx)).First(&dto, "submission_key = ?", key.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submissionKey", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every order, newest first.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := withFigures(r.db.WithContext(ctx)).Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) get(db *gorm.DB, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("orderId", id, 1, "unbounded")
	}

	var dto OrderDTO
	if err := withFigures(db).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

func withFigures(db *gorm.DB) *gorm.DB {
	return db.Preload("Figures", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("figure_number")
	})
}
