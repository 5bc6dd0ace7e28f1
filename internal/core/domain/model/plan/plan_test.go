package plan_test

import (
	"strings"
	"testing"

	"configurator/internal/core/domain/model/plan"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() plan.Params {
	return plan.Params{
		ID:               "duo",
		Name:             "Duo",
		Price:            10000,
		MaxFigures:       2,
		MaxAccsPerFigure: 1,
		AccExtraCost:     500,
		AllowsExtra:      true,
	}
}

func TestNewPlan(t *testing.T) {
	t.Run("should create plan with valid params", func(t *testing.T) {
		p, err := plan.NewPlan(validParams())

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "duo", p.ID())
		assert.Equal(t, "Duo", p.Name())
		assert.Equal(t, int64(10000), p.Price())
		assert.Equal(t, 2, p.MaxFigures())
		assert.Equal(t, 1, p.MaxAccsPerFigure())
		assert.Equal(t, int64(500), p.AccExtraCost())
		assert.True(t, p.AllowsExtra())
		assert.Equal(t, validParams(), p.Params())
	})

	t.Run("should accept zero accessory quota and zero extra cost", func(t *testing.T) {
		params := validParams()
		params.MaxAccsPerFigure = 0
		params.AccExtraCost = 0

		_, err := plan.NewPlan(params)

		require.NoError(t, err)
	})

	t.Run("should reject id and name longer than stored columns", func(t *testing.T) {
		params := validParams()
		params.ID = strings.Repeat("p", plan.MaxIDLength+1)
		params.Name = strings.Repeat("ñ", plan.MaxNameLength+1)

		_, err := plan.NewPlan(params)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorContains(t, err, "plan id length")
		assert.ErrorContains(t, err, "plan name length")
	})

	t.Run("should count characters, not bytes", func(t *testing.T) {
		params := validParams()
		params.Name = strings.Repeat("ñ", plan.MaxNameLength)

		_, err := plan.NewPlan(params)

		require.NoError(t, err)
	})

	t.Run("should reject out of range figure counts", func(t *testing.T) {
		for _, n := range []int{-1, 0, 5, 10} {
			params := validParams()
			params.MaxFigures = n

			_, err := plan.NewPlan(params)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "maxFigures %d", n)
		}
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		_, err := plan.NewPlan(plan.Params{Price: -1, MaxFigures: 1, MaxAccsPerFigure: -1, AccExtraCost: -5})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "plan id")
		assert.Contains(t, err.Error(), "plan name")
		assert.Contains(t, err.Error(), "maxAccsPerFigure")
		assert.Contains(t, err.Error(), "accExtraCost")
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var p plan.Plan

		require.ErrorIs(t, p.Validate(), plan.ErrPlanIsNotConstructed)
	})
}

func TestPlan_IsSlotCompatible(t *testing.T) {
	base, _ := plan.NewPlan(validParams())

	t.Run("should be compatible with a repriced plan", func(t *testing.T) {
		params := validParams()
		params.ID = "duo-promo"
		params.Price = 8000
		other, _ := plan.NewPlan(params)

		assert.True(t, base.IsSlotCompatible(other))
	})

	t.Run("should not be compatible when figure count differs", func(t *testing.T) {
		params := validParams()
		params.MaxFigures = 3
		other, _ := plan.NewPlan(params)

		assert.False(t, base.IsSlotCompatible(other))
	})

	t.Run("should not be compatible when accessory quota differs", func(t *testing.T) {
		params := validParams()
		params.MaxAccsPerFigure = 2
		other, _ := plan.NewPlan(params)

		assert.False(t, base.IsSlotCompatible(other))
	})
}
