package http

import (
	"errors"
	"fmt"

	"configurator/internal/core/application/usecases/commands"
	"configurator/internal/core/application/usecases/queries"
	"configurator/internal/core/domain/model/customer"
	"configurator/internal/core/domain/model/kernel"
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/core/domain/model/wizard"
	"configurator/internal/core/domain/services"
	"configurator/internal/generated/servers"
	"configurator/internal/pkg/errs"
)

func toAPIDraft(d wizard.Draft) servers.Draft {
	p := d.Params()
	out := servers.Draft{
		Id:               p.ID.Bytes(),
		Step:             servers.DraftStep(p.Step.String()),
		Figures:          []servers.DraftFigure{},
		PetId:            optItem(p.PetID),
		BackgroundId:     optItem(p.Background),
		CustomBackground: optString(p.CustomBg),
		Contact:          toAPIContact(p.Contact),
		ContactConfirmed: p.HasInfo,
		Submitting:       p.Submitting,
		LastError:        optString(p.LastError),
	}
	if p.OrderID > 0 {
		out.OrderId = &p.OrderID
	}

	pl, ok := d.Plan()
	if !ok {
		return out
	}

	apiPlan := toAPIPlan(pl)
	out.Plan = &apiPlan
	for i, f := range d.Store().Figures() {
		out.Figures = append(out.Figures, toAPIDraftFigure(i+1, f))
	}

	completion := d.Completion()
	pricing := d.Pricing()
	out.CompletedFigures = completion.CompletedFigureCount()
	out.RequiredFigures = completion.RequiredFigureCount()
	out.TotalPrice = pricing.TotalPrice()
	out.ExtraAccessoriesCount = pricing.ExtraAccessoryCount()
	return out
}

func toAPIDraftFigure(number int, f selection.Figure) servers.DraftFigure {
	out := servers.DraftFigure{
		FigureNumber: number,
		Complete:     services.IsFigureComplete(f),
		Hair:         optItem(f.Attribute(selection.Hair)),
		Face:         optItem(f.Attribute(selection.Face)),
		Body:         optItem(f.Attribute(selection.Body)),
		Legs:         optItem(f.Attribute(selection.Legs)),
		Accs:         itemIDs(f.Accessories()),
	}
	if f.Sex().IsSet() {
		sex := servers.FigureSex(f.Sex().String())
		out.Sex = &sex
	}
	return out
}

func toAPIPlan(p plan.Plan) servers.Plan {
	allowsExtra := p.AllowsExtra()
	return servers.Plan{
		Id:               p.ID(),
		Name:             p.Name(),
		Price:            p.Price(),
		MaxFigures:       p.MaxFigures(),
		MaxAccsPerFigure: p.MaxAccsPerFigure(),
		AccExtraCost:     p.AccExtraCost(),
		AllowsExtra:      &allowsExtra,
	}
}

func toAPIContact(f customer.Form) servers.ContactForm {
	return servers.ContactForm{
		Name:    optString(f.Name),
		Email:   optString(f.Email),
		Phone:   optString(f.Phone),
		Rut:     optString(f.RUT),
		Region:  optString(f.Region),
		Comuna:  optString(f.Comuna),
		Address: optString(f.Address),
		Note:    optString(f.Note),
	}
}

func toAPIOrder(v queries.OrderView) servers.Order {
	figures := make([]servers.OrderFigure, len(v.Figures))
	for i, f := range v.Figures {
		figures[i] = servers.OrderFigure{
			FigureNumber: f.Number,
			Sex:          servers.FigureSex(f.Sex),
			Hair:         f.HairID,
			Face:         f.FaceID,
			Body:         f.BodyID,
			Legs:         f.LegsID,
			Accessories:  f.Accessories,
		}
	}

	return servers.Order{
		Id:                    v.ID,
		Status:                servers.OrderStatus(v.Status),
		PlanId:                v.PlanID,
		PlanName:              v.PlanName,
		TotalPrice:            v.TotalPrice,
		ExtraAccessoriesCount: v.ExtraAccessoriesCount,
		PetId:                 optInt64(v.PetID),
		BackgroundId:          optInt64(v.BackgroundID),
		CustomBackground:      optString(v.CustomBackground),
		Customer: servers.CustomerInfo{
			Name:    v.Customer.Name,
			Email:   v.Customer.Email,
			Phone:   v.Customer.Phone,
			Rut:     v.Customer.RUT,
			Region:  v.Customer.Region,
			Comuna:  v.Customer.Comuna,
			Address: optString(v.Customer.Address),
			Note:    optString(v.Customer.Note),
		},
		Figures:   figures,
		CreatedAt: v.CreatedAt,
	}
}

func toAPIStats(s queries.GetOrderStatsQueryResponse) servers.OrderStats {
	out := servers.OrderStats{
		TotalOrders:          s.TotalOrders,
		TotalRevenue:         s.TotalRevenue,
		OrdersByStatus:       s.OrdersByStatus,
		CurrentMonthRevenue:  s.CurrentMonthRevenue,
		LastMonthRevenue:     s.LastMonthRevenue,
		RevenueChangePercent: s.RevenueChangePercent,
		TotalFigures:         s.TotalFigures,
		TopItems:             make([]servers.ItemUsage, len(s.TopItems)),
		RecentOrders:         make([]servers.RecentOrder, len(s.RecentOrders)),
	}
	if s.PopularPlan != nil {
		out.PopularPlan = &servers.PlanPopularity{Name: s.PopularPlan.Name, Orders: s.PopularPlan.Orders}
	}
	for i, item := range s.TopItems {
		out.TopItems[i] = servers.ItemUsage{ItemId: item.ItemID, Count: item.Count}
	}
	for i, r := range s.RecentOrders {
		out.RecentOrders[i] = servers.RecentOrder{
			Id:           r.ID,
			CustomerName: r.CustomerName,
			PlanName:     r.PlanName,
			TotalPrice:   r.TotalPrice,
			Status:       servers.OrderStatus(r.Status),
			CreatedAt:    r.CreatedAt,
		}
	}
	return out
}

func toCreateOrderCommand(key kernel.UUID, in servers.NewOrder) (commands.CreateOrderCommand, error) {
	p, err := toDomainPlan(in.Plan)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	store, err := selection.NewStore(p.MaxFigures())
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	for i, sel := range figureSelections(in.Selections) {
		fig := i + 1
		if sel == nil {
			continue
		}
		if fig > p.MaxFigures() {
			if isEmptySelection(*sel) {
				continue
			}
			return commands.CreateOrderCommand{}, errs.NewValueIsOutOfRangeError(
				"selections figure", fig, 1, p.MaxFigures(),
			)
		}
		if err = applySelection(&store, fig, *sel); err != nil {
			return commands.CreateOrderCommand{}, err
		}
	}
	if err = applyAddOns(&store, in); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		key, p, store, in.TotalPrice, in.ExtraAccessoriesCount, toDomainCustomer(in.CustomerInfo),
	)
}

// figureSelections lays the keyed figures out by figure number.
func figureSelections(in servers.FigureSelections) [plan.MaxFigures]*servers.FigureSelection {
	return [plan.MaxFigures]*servers.FigureSelection{in.Fig1, in.Fig2, in.Fig3, in.Fig4}
}

func isEmptySelection(sel servers.FigureSelection) bool {
	for _, id := range []*int64{sel.Hair, sel.Face, sel.Body, sel.Legs} {
		if id != nil && *id != 0 {
			return false
		}
	}
	return sel.Sex == nil && len(sel.Accs) == 0
}

func applySelection(store *selection.Store, fig int, sel servers.FigureSelection) error {
	if sel.Sex != nil {
		sex, err := selection.ParseSex(string(*sel.Sex))
		if err != nil {
			return err
		}
		if err = store.SetSex(fig, sex); err != nil {
			return err
		}
	}

	for category, id := range map[selection.Category]*int64{
		selection.Hair: sel.Hair,
		selection.Face: sel.Face,
		selection.Body: sel.Body,
		selection.Legs: sel.Legs,
	} {
		if id == nil || *id == 0 {
			continue
		}
		if err := store.SetAttribute(fig, category, selection.ItemID(*id)); err != nil {
			return err
		}
	}

	for _, id := range sel.Accs {
		f, err := store.Figure(fig)
		if err != nil {
			return err
		}
		if f.HasAccessory(selection.ItemID(id)) {
			return errs.NewValueIsInvalidErrorWithCause(
				"accs", fmt.Errorf("figure %d lists accessory %d twice", fig, id),
			)
		}
		if err = store.ToggleAccessory(fig, selection.ItemID(id)); err != nil {
			return err
		}
	}
	return nil
}

func applyAddOns(store *selection.Store, in servers.NewOrder) error {
	if in.BackgroundId != nil && in.CustomBackground != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"background", errors.New("choose a catalog background or a custom one, not both"),
		)
	}
	if in.PetId != nil && *in.PetId != 0 {
		if err := store.SetPet(selection.ItemID(*in.PetId)); err != nil {
			return err
		}
	}
	if in.BackgroundId != nil && *in.BackgroundId != 0 {
		if err := store.SetBackground(selection.ItemID(*in.BackgroundId)); err != nil {
			return err
		}
	}
	if in.CustomBackground != nil {
		if err := store.SetCustomBackground(*in.CustomBackground); err != nil {
			return err
		}
	}
	return nil
}

func toDomainPlan(p servers.Plan) (plan.Plan, error) {
	allowsExtra := true
	if p.AllowsExtra != nil {
		allowsExtra = *p.AllowsExtra
	}
	return plan.NewPlan(plan.Params{
		ID:               p.Id,
		Name:             p.Name,
		Price:            p.Price,
		MaxFigures:       p.MaxFigures,
		MaxAccsPerFigure: p.MaxAccsPerFigure,
		AccExtraCost:     p.AccExtraCost,
		AllowsExtra:      allowsExtra,
	})
}

func toDomainCustomer(c servers.CustomerInfo) customer.Form {
	return customer.Form{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		RUT:     c.Rut,
		Region:  c.Region,
		Comuna:  c.Comuna,
		Address: deref(c.Address),
		Note:    deref(c.Note),
	}
}

func toDomainContact(c *servers.ContactForm) customer.Form {
	if c == nil {
		return customer.Form{}
	}
	return customer.Form{
		Name:    deref(c.Name),
		Email:   deref(c.Email),
		Phone:   deref(c.Phone),
		RUT:     deref(c.Rut),
		Region:  deref(c.Region),
		Comuna:  deref(c.Comuna),
		Address: deref(c.Address),
		Note:    deref(c.Note),
	}
}

// toWizardAction maps a request body to the action it names. Fields the
// action needs must be present; other fields are ignored.
func toWizardAction(in servers.DraftAction) (wizard.Action, error) {
	switch in.Type {
	case servers.ChoosePlan:
		if in.Plan == nil {
			return nil, errs.NewValueIsRequiredError("plan")
		}
		p, err := toDomainPlan(*in.Plan)
		if err != nil {
			return nil, err
		}
		return wizard.ChoosePlan{Plan: p}, nil
	case servers.SetSex:
		fig, err := requireFigure(in)
		if err != nil {
			return nil, err
		}
		if in.Sex == nil {
			return nil, errs.NewValueIsRequiredError("sex")
		}
		sex, err := selection.ParseSex(string(*in.Sex))
		if err != nil {
			return nil, err
		}
		return wizard.SetSex{Figure: fig, Sex: sex}, nil
	case servers.SetAttribute:
		fig, err := requireFigure(in)
		if err != nil {
			return nil, err
		}
		if in.Category == nil {
			return nil, errs.NewValueIsRequiredError("category")
		}
		category, err := selection.ParseCategory(string(*in.Category))
		if err != nil {
			return nil, err
		}
		return wizard.SetAttribute{Figure: fig, Category: category, Item: selection.ItemID(deref(in.Item))}, nil
	case servers.ToggleAccessory:
		fig, err := requireFigure(in)
		if err != nil {
			return nil, err
		}
		item, err := requireItem(in)
		if err != nil {
			return nil, err
		}
		return wizard.ToggleAccessory{Figure: fig, Item: item}, nil
	case servers.ResetFigure:
		fig, err := requireFigure(in)
		if err != nil {
			return nil, err
		}
		return wizard.ResetFigure{Figure: fig}, nil
	case servers.SetPet:
		item, err := requireItem(in)
		if err != nil {
			return nil, err
		}
		return wizard.SetPet{Item: item}, nil
	case servers.ClearPet:
		return wizard.ClearPet{}, nil
	case servers.SetBackground:
		item, err := requireItem(in)
		if err != nil {
			return nil, err
		}
		return wizard.SetBackground{Item: item}, nil
	case servers.SetCustomBackground:
		if in.Ref == nil {
			return nil, errs.NewValueIsRequiredError("ref")
		}
		return wizard.SetCustomBackground{Ref: *in.Ref}, nil
	case servers.ProceedToContact:
		return wizard.ProceedToContact{}, nil
	case servers.UpdateContact:
		return wizard.UpdateContact{Form: toDomainContact(in.Contact)}, nil
	case servers.SetRegion:
		if in.Region == nil {
			return nil, errs.NewValueIsRequiredError("region")
		}
		return wizard.SetRegion{Region: *in.Region}, nil
	case servers.SubmitContact:
		if in.Contact == nil {
			return nil, errs.NewValueIsRequiredError("contact")
		}
		return wizard.SubmitContact{Form: toDomainContact(in.Contact)}, nil
	case servers.BackToConfiguring:
		return wizard.BackToConfiguring{}, nil
	case servers.BackToContact:
		return wizard.BackToContact{}, nil
	case servers.ChangePlan:
		return wizard.ChangePlan{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a known action", in.Type))
	}
}

func requireFigure(in servers.DraftAction) (int, error) {
	if in.Figure == nil {
		return 0, errs.NewValueIsRequiredError("figure")
	}
	return *in.Figure, nil
}

func requireItem(in servers.DraftAction) (selection.ItemID, error) {
	if in.Item == nil || *in.Item == 0 {
		return selection.NoItem, errs.NewValueIsRequiredError("item")
	}
	return selection.ItemID(*in.Item), nil
}

func itemIDs(ids []selection.ItemID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func optItem(id selection.ItemID) *int64 {
	return optInt64(int64(id))
}

func optInt64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
