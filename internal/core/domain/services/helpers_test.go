package services_test

import (
	"testing"

	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"

	"github.com/stretchr/testify/require"
)

func newPlan(t *testing.T, maxFigures, maxAccs int, price, extraCost int64) plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(plan.Params{
		ID:               "plan-test",
		Name:             "Test",
		Price:            price,
		MaxFigures:       maxFigures,
		MaxAccsPerFigure: maxAccs,
		AccExtraCost:     extraCost,
		AllowsExtra:      true,
	})
	require.NoError(t, err)
	return p
}

// duoPlan is {maxFigures:2, maxAccsPerFigure:1, accExtraCost:500, price:10000}.
func duoPlan(t *testing.T) plan.Plan {
	return newPlan(t, 2, 1, 10000, 500)
}

func storeFor(t *testing.T, p plan.Plan) selection.Store {
	t.Helper()
	s, err := selection.NewStore(p.MaxFigures())
	require.NoError(t, err)
	return s
}

// completeFigure fills every slot of figure fig and adds the given accessories.
func completeFigure(t *testing.T, s *selection.Store, fig int, accs ...selection.ItemID) {
	t.Helper()
	require.NoError(t, s.SetSex(fig, selection.Male))
	require.NoError(t, s.SetAttribute(fig, selection.Hair, 11))
	require.NoError(t, s.SetAttribute(fig, selection.Face, 21))
	require.NoError(t, s.SetAttribute(fig, selection.Body, 31))
	require.NoError(t, s.SetAttribute(fig, selection.Legs, 41))
	for _, id := range accs {
		require.NoError(t, s.ToggleAccessory(fig, id))
	}
}
