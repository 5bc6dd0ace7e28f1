package services

import (
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
)

// PriceCalculator prices a store under a plan. All amounts are integers in the
// smallest currency unit.
//
//	total = plan.Price + extra * plan.AccExtraCost + (pet ? selection.PetExtraCost : 0)
type PriceCalculator struct {
	plan  plan.Plan
	store selection.Store
}

func NewPriceCalculator(p plan.Plan, store selection.Store) PriceCalculator {
	return PriceCalculator{plan: p, store: store}
}

// ExtraAccessoryCount sums, over figures 1..plan.MaxFigures(), the accessories
// selected beyond the plan's free quota.
func (c PriceCalculator) ExtraAccessoryCount() int {
	extra := 0
	for fig := 1; fig <= c.plan.MaxFigures(); fig++ {
		f, err := c.store.Figure(fig)
		if err != nil {
			continue
		}
		if over := f.AccessoryCount() - c.plan.MaxAccsPerFigure(); over > 0 {
			extra += over
		}
	}
	return extra
}

// TotalPrice returns the price of the configuration.
func (c PriceCalculator) TotalPrice() int64 {
	total := c.plan.Price() + int64(c.ExtraAccessoryCount())*c.plan.AccExtraCost()
	if c.store.AddOns().HasPet() {
		total += selection.PetExtraCost
	}
	return total
}
