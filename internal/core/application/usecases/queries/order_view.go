// Package queries contains the read side of the configurator: orders as
// shown to operators and the admin dashboard statistics.
package queries

import (
	"context"
	"time"

	"configurator/internal/core/domain/model/order"
)

// OrderReader is the part of the order repository queries rely on.
type OrderReader interface {
	Get(ctx context.Context, id int64) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
}

// OrderView is the read model of a stored order.
type OrderView struct {
	ID                    int64
	Status                string
	PlanID                string
	PlanName              string
	TotalPrice            int64
	ExtraAccessoriesCount int
	PetID                 int64
	BackgroundID          int64
	CustomBackground      string
	Customer              CustomerView
	Figures               []FigureView
	CreatedAt             time.Time
}

type CustomerView struct {
	Name    string
	Email   string
	Phone   string
	RUT     string
	Region  string
	Comuna  string
	Address string
	Note    string
}

// FigureView is one configured figure. Accessories keep their selection order.
type FigureView struct {
	Number      int
	Sex         string
	HairID      int64
	FaceID      int64
	BodyID      int64
	LegsID      int64
	Accessories []int64
}

// NewOrderView flattens an order aggregate.
func NewOrderView(o *order.Order) OrderView {
	info := o.Customer()
	addOns := o.AddOns()

	figures := make([]FigureView, 0, o.FigureCount())
	for _, f := range o.Figures() {
		accs := make([]int64, 0, len(f.Accessories()))
		for _, id := range f.Accessories() {
			accs = append(accs, int64(id))
		}
		figures = append(figures, FigureView{
			Number:      f.Number(),
			Sex:         f.Sex().String(),
			HairID:      int64(f.HairID()),
			FaceID:      int64(f.FaceID()),
			BodyID:      int64(f.BodyID()),
			LegsID:      int64(f.LegsID()),
			Accessories: accs,
		})
	}

	return OrderView{
		ID:                    o.ID(),
		Status:                o.Status().String(),
		PlanID:                o.Plan().ID(),
		PlanName:              o.Plan().Name(),
		TotalPrice:            o.TotalPrice(),
		ExtraAccessoriesCount: o.ExtraAccessoriesCount(),
		PetID:                 int64(addOns.PetID()),
		BackgroundID:          int64(addOns.BackgroundID()),
		CustomBackground:      addOns.CustomBackground(),
		Customer: CustomerView{
			Name:    info.Name(),
			Email:   info.Email(),
			Phone:   info.Phone(),
			RUT:     info.RUT(),
			Region:  info.Region(),
			Comuna:  info.Comuna(),
			Address: info.Address(),
			Note:    info.Note(),
		},
		Figures:   figures,
		CreatedAt: o.CreatedAt(),
	}
}
