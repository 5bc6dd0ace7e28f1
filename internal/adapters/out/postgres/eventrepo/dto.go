// Package eventrepo is the transactional outbox of order events.
//
// Events are appended by the unit of work in the transaction that saved the
// order, then read and marked by the dispatch job outside of any transaction.
package eventrepo

import (
	"database/sql"
	"time"

	"configurator/internal/core/ports"

	"gorm.io/datatypes"
)

// OrderEventDTO is the row of the order_events table.
type OrderEventDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	OrderID     int64          `gorm:"index"`
	Type        string         `gorm:"type:varchar(64)"`
	Payload     datatypes.JSON `gorm:"type:jsonb"`
	Attempts    int
	LastError   string
	CreatedAt   time.Time
	ProcessedAt sql.NullTime
	NotifiedAt  sql.NullTime
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

func toPort(dto OrderEventDTO) ports.OrderEvent {
	return ports.OrderEvent{
		ID:        dto.ID,
		OrderID:   dto.OrderID,
		Type:      dto.Type,
		Payload:   []byte(dto.Payload),
		Attempts:  dto.Attempts,
		CreatedAt: dto.CreatedAt,
		Notified:  dto.NotifiedAt.Valid,
	}
}
