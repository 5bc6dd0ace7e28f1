package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/order"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// duoPlan is {maxFigures:2, maxAccsPerFigure:1, accExtraCost:500, price:10000}.
func duoPlan(t *testing.T) plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(plan.Params{
		ID: "duo", Name: "Dúo", Price: 10000, MaxFigures: 2, MaxAccsPerFigure: 1, AccExtraCost: 500,
	})
	require.NoError(t, err)
	return p
}

func validForm() customer.Form {
	return customer.Form{
		Name: "Camila Rojas", Email: "camila@example.cl", Phone: "987654321",
		RUT: "12.345.678-5", Region: "Valparaíso", Comuna: "Viña del Mar",
	}
}

func completeFigure(t *testing.T, s *selection.Store, fig int, accs ...selection.ItemID) {
	t.Helper()
	require.NoError(t, s.SetSex(fig, selection.Female))
	require.NoError(t, s.SetAttribute(fig, selection.Hair, 11))
	require.NoError(t, s.SetAttribute(fig, selection.Face, 21))
	require.NoError(t, s.SetAttribute(fig, selection.Body, 31))
	require.NoError(t, s.SetAttribute(fig, selection.Legs, 41))
	for _, id := range accs {
		require.NoError(t, s.ToggleAccessory(fig, id))
	}
}

// configuredStore has figure 1 with two accessories and figure 2 with one,
// priced at 10500 on the duo plan.
func configuredStore(t *testing.T) selection.Store {
	t.Helper()
	s, err := selection.NewStore(2)
	require.NoError(t, err)
	completeFigure(t, &s, 1, 51, 52)
	completeFigure(t, &s, 2, 53)
	return s
}

func applyAll(t *testing.T, d wizard.Draft, actions ...wizard.Action) wizard.Draft {
	t.Helper()
	for _, a := range actions {
		var err error
		d, err = wizard.Apply(d, a)
		require.NoError(t, err, a.Name())
	}
	return d
}

func summaryDraft(t *testing.T) wizard.Draft {
	t.Helper()
	d, err := wizard.NewDraft(kernel.NewUUID())
	require.NoError(t, err)

	d = applyAll(t, d, wizard.ChoosePlan{Plan: duoPlan(t)})
	for fig, accs := range map[int][]selection.ItemID{1: {51, 52}, 2: {53}} {
		d = applyAll(t, d,
			wizard.SetSex{Figure: fig, Sex: selection.Female},
			wizard.SetAttribute{Figure: fig, Category: selection.Hair, Item: 11},
			wizard.SetAttribute{Figure: fig, Category: selection.Face, Item: 21},
			wizard.SetAttribute{Figure: fig, Category: selection.Body, Item: 31},
			wizard.SetAttribute{Figure: fig, Category: selection.Legs, Item: 41},
		)
		for _, id := range accs {
			d = applyAll(t, d, wizard.ToggleAccessory{Figure: fig, Item: id})
		}
	}
	return applyAll(t, d, wizard.ProceedToContact{}, wizard.SubmitContact{Form: validForm()})
}

func storedOrder(t *testing.T, id int64, key kernel.UUID) *order.Order {
	t.Helper()
	info, err := customer.NewInfo(validForm())
	require.NoError(t, err)

	o, err := services.NewOrderAssembler().Assemble(key, duoPlan(t), configuredStore(t), info, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	o.ClearDomainEvents()
	return o
}
