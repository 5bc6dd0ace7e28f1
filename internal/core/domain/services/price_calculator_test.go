package services_test

import (
	"testing"

	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCalculator(t *testing.T) {
	t.Run("scenario: one accessory over quota", func(t *testing.T) {
		p := duoPlan(t)
		s := storeFor(t, p)
		completeFigure(t, &s, 1, 51, 52)
		completeFigure(t, &s, 2, 53)

		pricing := services.NewPriceCalculator(p, s)

		assert.Equal(t, 1, pricing.ExtraAccessoryCount())
		assert.Equal(t, int64(10500), pricing.TotalPrice())
	})

	t.Run("should charge nothing extra within quota", func(t *testing.T) {
		p := newPlan(t, 3, 2, 15000, 700)
		s := storeFor(t, p)
		completeFigure(t, &s, 1, 51, 52)
		completeFigure(t, &s, 2, 53)

		pricing := services.NewPriceCalculator(p, s)

		assert.Zero(t, pricing.ExtraAccessoryCount())
		assert.Equal(t, int64(15000), pricing.TotalPrice())
	})

	t.Run("should count overage per figure", func(t *testing.T) {
		p := newPlan(t, 2, 0, 8000, 300)
		s := storeFor(t, p)
		completeFigure(t, &s, 1, 51, 52)
		completeFigure(t, &s, 2, 53)

		pricing := services.NewPriceCalculator(p, s)

		assert.Equal(t, 3, pricing.ExtraAccessoryCount())
		assert.Equal(t, int64(8900), pricing.TotalPrice())
	})

	t.Run("should add the pet cost", func(t *testing.T) {
		p := duoPlan(t)
		s := storeFor(t, p)
		require.NoError(t, s.SetPet(9))

		assert.Equal(t, int64(10000)+selection.PetExtraCost, services.NewPriceCalculator(p, s).TotalPrice())

		require.NoError(t, s.ClearPet())
		assert.Equal(t, int64(10000), services.NewPriceCalculator(p, s).TotalPrice())
	})

	t.Run("should not charge backgrounds", func(t *testing.T) {
		p := duoPlan(t)
		s := storeFor(t, p)
		require.NoError(t, s.SetBackground(4))

		assert.Equal(t, int64(10000), services.NewPriceCalculator(p, s).TotalPrice())
	})

	t.Run("should never decrease while adding accessories or a pet", func(t *testing.T) {
		p := newPlan(t, 4, 1, 12000, 450)
		s := storeFor(t, p)
		prev := services.NewPriceCalculator(p, s).TotalPrice()

		steps := []func() error{
			func() error { return s.ToggleAccessory(1, 51) },
			func() error { return s.ToggleAccessory(1, 52) },
			func() error { return s.ToggleAccessory(2, 51) },
			func() error { return s.SetPet(7) },
			func() error { return s.ToggleAccessory(2, 53) },
			func() error { return s.ToggleAccessory(3, 54) },
			func() error { return s.ToggleAccessory(4, 55) },
			func() error { return s.ToggleAccessory(4, 56) },
			func() error { return s.ToggleAccessory(4, 57) },
		}
		for i, step := range steps {
			require.NoError(t, step())
			total := services.NewPriceCalculator(p, s).TotalPrice()
			assert.GreaterOrEqual(t, total, prev, "step %d", i)
			prev = total
		}
		assert.Equal(t, int64(12000+3*450)+selection.PetExtraCost, prev)
	})
}
