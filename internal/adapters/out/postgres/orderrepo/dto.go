// Package orderrepo persists order aggregates and their figure snapshots.
// Orders live in the orders table; each configured figure is a row of
// order_figures with its accessories kept in order in a bigint array.
package orderrepo

import (
	"time"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	SubmissionKey         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_orders_submission_key"`
	Status                string    `gorm:"type:varchar(16)"`
	Plan                  PlanDTO   `gorm:"embedded;embeddedPrefix:plan_"`
	TotalPrice            int64
	ExtraAccessoriesCount int
	PetID                 int64
	BackgroundID          int64
	CustomBackground      string
	Customer              CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Figures               []FigureDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// PlanDTO snapshots the plan the order was priced with.
type PlanDTO struct {
	ID               string `gorm:"type:varchar(64)"`
	Name             string `gorm:"type:varchar(128)"`
	Price            int64
	MaxFigures       int
	MaxAccsPerFigure int
	AccExtraCost     int64
	AllowsExtra      bool
}

type CustomerDTO struct {
	Name    string
	Email   string
	Phone   string
	RUT     string `gorm:"column:rut;type:varchar(16)"`
	Region  string
	Comuna  string
	Address string
	Note    string
}

// FigureDTO is one configured figure of an order.
type FigureDTO struct {
	ID          int64         `gorm:"primaryKey;autoIncrement"`
	OrderID     int64         `gorm:"uniqueIndex:idx_order_figures_number"`
	Number      int           `gorm:"column:figure_number;type:smallint;uniqueIndex:idx_order_figures_number"`
	Sex         string        `gorm:"type:varchar(8)"`
	HairID      int64
	FaceID      int64
	BodyID      int64
	LegsID      int64
	Accessories pq.Int64Array `gorm:"type:bigint[]"`
}

func (FigureDTO) TableName() string {
	return "order_figures"
}

func fromDomain(o *order.Order) OrderDTO {
	p := o.Plan()
	info := o.Customer()
	addOns := o.AddOns()

	figures := make([]FigureDTO, 0, o.FigureCount())
	for _, f := range o.Figures() {
		figures = append(figures, figureFromDomain(o.ID(), f))
	}

	return OrderDTO{
		ID:            o.ID(),
		SubmissionKey: o.SubmissionKey().Bytes(),
		Status:        o.Status().String(),
		Plan: PlanDTO{
			ID:               p.ID(),
			Name:             p.Name(),
			Price:            p.Price(),
			MaxFigures:       p.MaxFigures(),
			MaxAccsPerFigure: p.MaxAccsPerFigure(),
			AccExtraCost:     p.AccExtraCost(),
			AllowsExtra:      p.AllowsExtra(),
		},
		TotalPrice:            o.TotalPrice(),
		ExtraAccessoriesCount: o.ExtraAccessoriesCount(),
		PetID:                 int64(addOns.PetID()),
		BackgroundID:          int64(addOns.BackgroundID()),
		CustomBackground:      addOns.CustomBackground(),
		Customer: CustomerDTO{
			Name:    info.Name(),
			Email:   info.Email(),
			Phone:   info.Phone(),
			RUT:     info.RUT(),
			Region:  info.Region(),
			Comuna:  info.Comuna(),
			Address: info.Address(),
			Note:    info.Note(),
		},
		CreatedAt: o.CreatedAt(),
		Figures:   figures,
	}
}

func figureFromDomain(orderID int64, f order.FigureSnapshot) FigureDTO {
	accs := f.Accessories()
	ids := make(pq.Int64Array, 0, len(accs))
	for _, id := range accs {
		ids = append(ids, int64(id))
	}

	return FigureDTO{
		OrderID:     orderID,
		Number:      f.Number(),
		Sex:         f.Sex().String(),
		HairID:      int64(f.HairID()),
		FaceID:      int64(f.FaceID()),
		BodyID:      int64(f.BodyID()),
		LegsID:      int64(f.LegsID()),
		Accessories: ids,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	key, err := kernel.UUIDFromBytes(dto.SubmissionKey[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	p, err := plan.NewPlan(plan.Params(dto.Plan))
	if err != nil {
		return nil, err
	}

	info, err := customer.RestoreInfo(customer.Form{
		Name:    dto.Customer.Name,
		Email:   dto.Customer.Email,
		Phone:   dto.Customer.Phone,
		RUT:     dto.Customer.RUT,
		Region:  dto.Customer.Region,
		Comuna:  dto.Customer.Comuna,
		Address: dto.Customer.Address,
		Note:    dto.Customer.Note,
	})
	if err != nil {
		return nil, err
	}

	addOns, err := selection.RestoreAddOns(
		selection.ItemID(dto.PetID),
		selection.ItemID(dto.BackgroundID),
		dto.CustomBackground,
	)
	if err != nil {
		return nil, err
	}

	figures := make([]order.FigureSnapshot, 0, len(dto.Figures))
	for _, f := range dto.Figures {
		snapshot, figErr := figureToDomain(f)
		if figErr != nil {
			return nil, figErr
		}
		figures = append(figures, snapshot)
	}

	return order.RestoreOrder(dto.ID, status, order.Params{
		SubmissionKey:         key,
		Plan:                  p,
		Figures:               figures,
		TotalPrice:            dto.TotalPrice,
		ExtraAccessoriesCount: dto.ExtraAccessoriesCount,
		AddOns:                addOns,
		Customer:              info,
		CreatedAt:             dto.CreatedAt,
	})
}

func figureToDomain(dto FigureDTO) (order.FigureSnapshot, error) {
	sex, err := selection.ParseSex(dto.Sex)
	if err != nil {
		return order.FigureSnapshot{}, err
	}

	accs := make([]selection.ItemID, 0, len(dto.Accessories))
	for _, id := range dto.Accessories {
		accs = append(accs, selection.ItemID(id))
	}

	f, err := selection.RestoreFigure(selection.FigureParams{
		Sex:         sex,
		Hair:        selection.ItemID(dto.HairID),
		Face:        selection.ItemID(dto.FaceID),
		Body:        selection.ItemID(dto.BodyID),
		Legs:        selection.ItemID(dto.LegsID),
		Accessories: accs,
	})
	if err != nil {
		return order.FigureSnapshot{}, err
	}

	return order.NewFigureSnapshot(dto.Number, f)
}
