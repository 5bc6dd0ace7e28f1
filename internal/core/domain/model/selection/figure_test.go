package selection_test

import (
	"testing"

	"configurator/internal/core/domain/model/selection"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreFigure(t *testing.T) {
	t.Run("should keep accessory order", func(t *testing.T) {
		f, err := selection.RestoreFigure(selection.FigureParams{
			Sex: selection.Female, Hair: 1, Face: 2, Body: 3, Legs: 4,
			Accessories: []selection.ItemID{8, 6},
		})

		require.NoError(t, err)
		assert.Equal(t, []selection.ItemID{8, 6}, f.Accessories())
		assert.Equal(t, selection.FigureParams{
			Sex: selection.Female, Hair: 1, Face: 2, Body: 3, Legs: 4,
			Accessories: []selection.ItemID{8, 6},
		}, f.Params())
	})

	t.Run("should reject too many accessories", func(t *testing.T) {
		_, err := selection.RestoreFigure(selection.FigureParams{Accessories: []selection.ItemID{1, 2, 3}})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject duplicate or unset accessories", func(t *testing.T) {
		_, err := selection.RestoreFigure(selection.FigureParams{Accessories: []selection.ItemID{1, 1}})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = selection.RestoreFigure(selection.FigureParams{Accessories: []selection.ItemID{0}})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid attribute values", func(t *testing.T) {
		_, err := selection.RestoreFigure(selection.FigureParams{Sex: selection.Sex(5), Legs: -1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sex")
		assert.Contains(t, err.Error(), "legs")
	})

	t.Run("accessor returns a copy", func(t *testing.T) {
		f, _ := selection.RestoreFigure(selection.FigureParams{Accessories: []selection.ItemID{1}})

		accs := f.Accessories()
		accs[0] = 99

		assert.Equal(t, []selection.ItemID{1}, f.Accessories())
	})
}

func TestParseSex(t *testing.T) {
	for input, expected := range map[string]selection.Sex{"male": selection.Male, "female": selection.Female, "": selection.SexUnset} {
		sex, err := selection.ParseSex(input)

		require.NoError(t, err)
		assert.Equal(t, expected, sex)
		assert.Equal(t, input, sex.String())
	}

	_, err := selection.ParseSex("other")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseCategory(t *testing.T) {
	for _, c := range selection.AllCategories {
		parsed, err := selection.ParseCategory(c.String())

		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := selection.ParseCategory("sex")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", selection.CategoryUnknown.String())
}

func TestRestoreAddOns(t *testing.T) {
	_, err := selection.RestoreAddOns(0, 3, "custom.png")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = selection.RestoreAddOns(-1, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
