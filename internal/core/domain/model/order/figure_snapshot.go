package order

import (
	"errors"
	"fmt"

	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
	"configurator/internal/pkg/errs"
)

// FigureSnapshot is the frozen selection of one figure of an order.
type FigureSnapshot struct {
	number int
	figure selection.Figure
}

// NewFigureSnapshot captures figure f as the order's figure number n (1-based).
// Only complete figures are accepted: sex, hair, face, body and legs set and
// at least one accessory.
func NewFigureSnapshot(n int, f selection.Figure) (FigureSnapshot, error) {
	if n < 1 || n > plan.MaxFigures {
		return FigureSnapshot{}, errs.NewValueIsOutOfRangeError("figureNumber", n, 1, plan.MaxFigures)
	}
	if missing := missingParts(f); len(missing) > 0 {
		return FigureSnapshot{}, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("figure %d", n),
			fmt.Errorf("missing %v", missing),
		)
	}
	return FigureSnapshot{number: n, figure: f}, nil
}

// Number is the 1-based position of the figure in the order.
func (s FigureSnapshot) Number() int { return s.number }

func (s FigureSnapshot) Sex() selection.Sex { return s.figure.Sex() }

func (s FigureSnapshot) HairID() selection.ItemID { return s.figure.Attribute(selection.Hair) }

func (s FigureSnapshot) FaceID() selection.ItemID { return s.figure.Attribute(selection.Face) }

func (s FigureSnapshot) BodyID() selection.ItemID { return s.figure.Attribute(selection.Body) }

func (s FigureSnapshot) LegsID() selection.ItemID { return s.figure.Attribute(selection.Legs) }

// Accessories returns the accessory ids in selection order.
func (s FigureSnapshot) Accessories() []selection.ItemID { return s.figure.Accessories() }

// Figure returns the snapshot as a selection figure.
func (s FigureSnapshot) Figure() selection.Figure { return s.figure }

func missingParts(f selection.Figure) []string {
	var missing []string
	if !f.Sex().IsSet() {
		missing = append(missing, "sex")
	}
	for _, c := range selection.AttributeCategories {
		if !f.Attribute(c).IsSet() {
			missing = append(missing, c.String())
		}
	}
	if f.AccessoryCount() == 0 {
		missing = append(missing, selection.Accessories.String())
	}
	return missing
}

func validateFigures(figures []FigureSnapshot, maxFigures int) error {
	if len(figures) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("figures", errors.New("an order needs at least one complete figure"))
	}
	seen := make(map[int]bool, len(figures))
	for _, fs := range figures {
		if fs.number < 1 || fs.number > maxFigures {
			return errs.NewValueIsOutOfRangeError("figureNumber", fs.number, 1, maxFigures)
		}
		if seen[fs.number] {
			return errs.NewValueIsInvalidErrorWithCause("figures", fmt.Errorf("figure %d is listed twice", fs.number))
		}
		seen[fs.number] = true
	}
	return nil
}
