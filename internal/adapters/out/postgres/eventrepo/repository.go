package eventrepo

import (
	"context"
	"strconv"
	"strings"
	"time"

	"configurator/internal/core/ports"
	"configurator/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxErrorLength = 1024

// GormOrderEventRepository implements ports.OrderEventRepository using GORM.
type GormOrderEventRepository struct {
	db *gorm.DB
}

func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// Append stores a new event for orderID.
func (r *GormOrderEventRepository) Append(
	ctx context.Context,
	orderID int64,
	eventType string,
	payload []byte,
	at time.Time,
) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("orderId", orderID, 1, "unbounded")
	}
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}

	dto := OrderEventDTO{
		OrderID:   orderID,
		Type:      eventType,
		Payload:   datatypes.JSON(payload),
		CreatedAt: at,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOrderEventRepository) GetUnprocessed(ctx context.Context, limit, maxAttempts int) ([]ports.OrderEvent, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Where("processed_at IS NULL AND attempts < ?", maxAttempts).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.OrderEvent, 0, len(dtos))
	for _, dto := range dtos {
		events = append(events, toPort(dto))
	}
	return events, nil
}

func (r *GormOrderEventRepository) MarkProcessed(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"processed_at": time.Now().UTC(),
			"last_error":   "",
		})
	return checkAffected(result, id)
}

func (r *GormOrderEventRepository) MarkNotified(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id = ?", id).
		Update("notified_at", time.Now().UTC())
	return checkAffected(result, id)
}

func (r *GormOrderEventRepository) MarkFailed(ctx context.Context, id int64, cause string) error {
	if len(cause) > maxErrorLength {
		cause = strings.ToValidUTF8(cause[:maxErrorLength], "")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": cause,
		})
	return checkAffected(result, id)
}

func (r *GormOrderEventRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("processed_at IS NOT NULL AND processed_at < ?", before).
		Delete(&OrderEventDTO{})
	return result.RowsAffected, result.Error
}

func checkAffected(result *gorm.DB, id int64) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderEvent", strconv.FormatInt(id, 10))
	}
	return nil
}
