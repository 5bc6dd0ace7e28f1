package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("redis unavailable")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("draftId", "9b2c"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 9b2c",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("draftId", "9b2c", cause),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: draftId, ID is: 9b2c (cause: redis unavailable)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("rut"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: rut",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("rut", errors.New("check digit mismatch")),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: rut (cause: check digit mismatch)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("maxFigures", 7, 1, 4),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 7 is maxFigures, min value is 1, max value is 4",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("accExtraCost", -5, 0, "unbounded", cause),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: -5 is accExtraCost, min value is 0, max value is unbounded (cause: redis unavailable)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("region"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: region",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("region", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: region (cause: blank)",
		},
		{
			name:     "conflict",
			err:      errs.NewConflictError("draft"),
			sentinel: errs.ErrConflict,
			want:     "conflict: draft",
		},
		{
			name:     "conflict with cause",
			err:      errs.NewConflictErrorWithCause("draft", errors.New("submission in flight")),
			sentinel: errs.ErrConflict,
			want:     "conflict: draft (cause: submission in flight)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("apply action: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrConflict,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestErrorsAsExposesDetails(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsOutOfRangeError("figure", 5, 1, 2),
	)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "figure", rangeErr.ParamName)
	assert.Equal(t, 5, rangeErr.Value)
	assert.Equal(t, 2, rangeErr.Max)

	var requiredErr *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &requiredErr)
	assert.Equal(t, "name", requiredErr.ParamName)
}

func TestMessagesAreSingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("note", "line one\r\nline two\nline three", 0, 500)

	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "line one line two line three")

	notFound := errs.NewObjectNotFoundError("orderId", "42\n")
	assert.Equal(t, "object not found: 42 ", notFound.Error())
}
