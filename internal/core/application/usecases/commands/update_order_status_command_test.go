package commands_test

import (
	"testing"

	"configurator/internal/core/application/usecases/commands"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	tests := []struct {
		name    string
		orderID int64
		status  string
		want    order.Status
		wantErr error
	}{
		{name: "lowercase status", orderID: 1, status: "processing", want: order.Processing},
		{name: "mixed case status", orderID: 9, status: "Cancelled", want: order.Cancelled},
		{name: "zero id", orderID: 0, status: "completed", wantErr: errs.ErrValueIsOutOfRange},
		{name: "unknown status", orderID: 1, status: "shipped", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewUpdateOrderStatusCommand(tt.orderID, tt.status)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.orderID, cmd.OrderID())
			assert.Equal(t, tt.want, cmd.Status())
		})
	}
}
