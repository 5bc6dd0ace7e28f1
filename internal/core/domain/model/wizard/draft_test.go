package wizard_test

import (
	"testing"

	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreDraft(t *testing.T) {
	t.Run("should round trip every step", func(t *testing.T) {
		drafts := map[string]wizard.Draft{
			"plan selection": newDraft(t),
			"configuring":    configured(t),
			"summary":        atSummary(t),
			"submitting":     apply(t, atSummary(t), wizard.BeginSubmission{}),
			"confirmed":      apply(t, atSummary(t), wizard.BeginSubmission{}, wizard.SubmissionSucceeded{OrderID: 8}),
		}

		for name, d := range drafts {
			t.Run(name, func(t *testing.T) {
				restored, err := wizard.RestoreDraft(d.Params())

				require.NoError(t, err)
				assert.Equal(t, d.Params(), restored.Params())
				assert.Equal(t, d.Step(), restored.Step())
				assert.Equal(t, d.Store(), restored.Store())
			})
		}
	})

	t.Run("should reject a step without a plan", func(t *testing.T) {
		params := newDraft(t).Params()
		params.Step = wizard.Configuring

		_, err := wizard.RestoreDraft(params)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a summary without contact data", func(t *testing.T) {
		params := atSummary(t).Params()
		params.HasInfo = false

		_, err := wizard.RestoreDraft(params)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject figures that do not fit the plan", func(t *testing.T) {
		params := configured(t).Params()
		params.Figures = params.Figures[:1]

		_, err := wizard.RestoreDraft(params)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseStep(t *testing.T) {
	for _, step := range []wizard.Step{wizard.PlanSelection, wizard.Configuring, wizard.ContactInfo, wizard.Summary, wizard.Confirmed} {
		parsed, err := wizard.ParseStep(step.String())

		require.NoError(t, err)
		assert.Equal(t, step, parsed)
	}

	_, err := wizard.ParseStep("done")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
