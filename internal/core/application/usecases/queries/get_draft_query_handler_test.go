package queries_test

import (
	"context"
	"testing"

	"configurator/internal/core/application/usecases/queries"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDraftReader struct{ mock.Mock }

func (m *MockDraftReader) Get(ctx context.Context, id kernel.UUID) (wizard.Draft, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(wizard.Draft), args.Error(1)
}

func TestGetDraftQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	t.Run("should load the draft", func(t *testing.T) {
		draft, err := wizard.NewDraft(id)
		require.NoError(t, err)
		reader := new(MockDraftReader)
		reader.On("Get", ctx, id).Return(draft, nil).Once()
		query, err := queries.NewGetDraftQuery(id)
		require.NoError(t, err)

		got, err := queries.NewGetDraftQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		reader.AssertExpectations(t)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		reader := new(MockDraftReader)
		reader.On("Get", ctx, id).Return(wizard.Draft{}, errs.NewObjectNotFoundError("draft", id.String())).Once()
		query, err := queries.NewGetDraftQuery(id)
		require.NoError(t, err)

		_, err = queries.NewGetDraftQueryHandler(reader).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unset id", func(t *testing.T) {
		_, err := queries.NewGetDraftQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject a query not built by its constructor", func(t *testing.T) {
		_, err := queries.NewGetDraftQueryHandler(new(MockDraftReader)).Handle(ctx, queries.GetDraftQuery{})

		require.ErrorIs(t, err, queries.ErrGetDraftQueryIsNotConstructed)
	})
}
