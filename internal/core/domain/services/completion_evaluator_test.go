package services_test

import (
	"fmt"
	"testing"

	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFigureComplete_AllCombinations(t *testing.T) {
	// bit i set means field i is filled: sex, hair, face, body, legs.
	// Accessories are always present so only the five single-valued fields vary,
	// then the accessory dimension is checked separately.
	for mask := range 1 << 5 {
		t.Run(fmt.Sprintf("mask %05b", mask), func(t *testing.T) {
			params := selection.FigureParams{Accessories: []selection.ItemID{51}}
			if mask&1 != 0 {
				params.Sex = selection.Female
			}
			if mask&2 != 0 {
				params.Hair = 11
			}
			if mask&4 != 0 {
				params.Face = 21
			}
			if mask&8 != 0 {
				params.Body = 31
			}
			if mask&16 != 0 {
				params.Legs = 41
			}
			f, err := selection.RestoreFigure(params)
			require.NoError(t, err)

			assert.Equal(t, mask == 31, services.IsFigureComplete(f))

			params.Accessories = nil
			withoutAccs, err := selection.RestoreFigure(params)
			require.NoError(t, err)
			assert.False(t, services.IsFigureComplete(withoutAccs))
		})
	}
}

func TestCompletionEvaluator(t *testing.T) {
	t.Run("should report categories per figure", func(t *testing.T) {
		p := duoPlan(t)
		s := storeFor(t, p)
		require.NoError(t, s.SetAttribute(1, selection.Body, 31))

		eval := services.NewCompletionEvaluator(p, s)

		assert.True(t, eval.IsCategoryComplete(1, selection.Body))
		assert.False(t, eval.IsCategoryComplete(1, selection.Hair))
		assert.False(t, eval.IsCategoryComplete(1, selection.Accessories))
		assert.False(t, eval.IsCategoryComplete(3, selection.Body))
	})

	t.Run("should require every plan slot", func(t *testing.T) {
		p := newPlan(t, 4, 1, 20000, 500)
		s := storeFor(t, p)
		for fig := 1; fig <= 3; fig++ {
			completeFigure(t, &s, fig, 51)
		}

		eval := services.NewCompletionEvaluator(p, s)
		assert.Equal(t, 3, eval.CompletedFigureCount())
		assert.Equal(t, 4, eval.RequiredFigureCount())
		assert.False(t, eval.IsOrderSubmittable())

		completeFigure(t, &s, 4, 51)

		eval = services.NewCompletionEvaluator(p, s)
		assert.Equal(t, 4, eval.CompletedFigureCount())
		assert.True(t, eval.IsOrderSubmittable())
	})

	t.Run("should give no partial credit", func(t *testing.T) {
		p := newPlan(t, 1, 1, 5000, 500)
		s := storeFor(t, p)
		completeFigure(t, &s, 1, 51, 52)
		require.NoError(t, s.SetAttribute(1, selection.Legs, 41))

		eval := services.NewCompletionEvaluator(p, s)

		assert.False(t, eval.IsFigureComplete(1))
		assert.Zero(t, eval.CompletedFigureCount())
	})

	t.Run("should lose completion when sex changes", func(t *testing.T) {
		p := newPlan(t, 1, 1, 5000, 500)
		s := storeFor(t, p)
		completeFigure(t, &s, 1, 51)
		require.NoError(t, s.SetSex(1, selection.Female))

		eval := services.NewCompletionEvaluator(p, s)

		assert.False(t, eval.IsFigureComplete(1))
		assert.False(t, eval.IsCategoryComplete(1, selection.Hair))
		assert.True(t, eval.IsCategoryComplete(1, selection.Body))
	})

	t.Run("scenario: second figure missing legs", func(t *testing.T) {
		p := duoPlan(t)
		s := storeFor(t, p)
		completeFigure(t, &s, 1, 51, 52)
		completeFigure(t, &s, 2, 53)
		require.NoError(t, s.SetAttribute(2, selection.Legs, selection.NoItem))

		eval := services.NewCompletionEvaluator(p, s)

		assert.False(t, eval.IsOrderSubmittable())
		assert.Equal(t, 1, eval.CompletedFigureCount())
	})
}
