package selection

import (
	"errors"
	"fmt"
	"strings"

	"configurator/internal/core/domain/model/plan"
	"configurator/internal/pkg/errs"
)

// ErrStoreIsNotConstructed is returned by operations on a Store not built through NewStore or RestoreStore.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store holds the figures of one configuration plus its add-ons.
// Figures are addressed by figure number 1..Size(); slot i lives at index i-1.
//
// Store is a value: assigning it copies every figure, so callers can keep the
// previous state around while mutating a copy.
type Store struct {
	figures [plan.MaxFigures]Figure
	size    int
	addOns  AddOns
}

// NewStore returns a store with size empty figure slots.
//
// Example:
//
//	store, err := selection.NewStore(p.MaxFigures())
//	_ = store.SetSex(1, selection.Female)
//	_ = store.SetAttribute(1, selection.Hair, 12)
//	_ = store.ToggleAccessory(1, 40)
func NewStore(size int) (Store, error) {
	if size < plan.MinFigures || size > plan.MaxFigures {
		return Store{}, errs.NewValueIsOutOfRangeError("figure slots", size, plan.MinFigures, plan.MaxFigures)
	}
	return Store{size: size}, nil
}

// RestoreStore rebuilds a store from persisted figures and add-ons.
func RestoreStore(figures []Figure, addOns AddOns) (Store, error) {
	s, err := NewStore(len(figures))
	if err != nil {
		return Store{}, err
	}
	copy(s.figures[:], figures)
	s.addOns = addOns
	return s, nil
}

// Validate ensures the store has at least one figure slot.
func (s Store) Validate() error {
	if s.size == 0 {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// Size is the number of figure slots.
func (s Store) Size() int {
	return s.size
}

// Figure returns the figure with the given 1-based number.
func (s Store) Figure(figure int) (Figure, error) {
	if err := s.checkFigure(figure); err != nil {
		return Figure{}, err
	}
	return s.figures[figure-1], nil
}

// Figures returns a copy of every figure in slot order.
func (s Store) Figures() []Figure {
	out := make([]Figure, s.size)
	copy(out, s.figures[:s.size])
	return out
}

func (s Store) AddOns() AddOns {
	return s.addOns
}

// SetSex sets the figure's sex. A different sex clears hair and face,
// whose catalogs are sex-specific.
func (s *Store) SetSex(figure int, sex Sex) error {
	if err := errors.Join(s.checkFigure(figure), sex.Validate()); err != nil {
		return err
	}
	s.figures[figure-1].setSex(sex)
	return nil
}

// SetAttribute overwrites a single-valued category. Selecting the item that is
// already chosen clears the slot, and NoItem clears it explicitly.
func (s *Store) SetAttribute(figure int, category Category, id ItemID) error {
	if err := s.checkFigure(figure); err != nil {
		return err
	}
	if !category.IsAttribute() {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%s is not a single-valued category", category),
		)
	}
	if err := id.validate(category.String()); err != nil {
		return err
	}

	if !id.IsSet() {
		id = s.figures[figure-1].Attribute(category)
		if !id.IsSet() {
			return nil
		}
	}
	s.figures[figure-1].setAttribute(category, id)
	return nil
}

// ToggleAccessory removes id when present and adds it when absent and fewer than
// MaxAccessories are selected. Adding to a full figure is a no-op, not an error.
func (s *Store) ToggleAccessory(figure int, id ItemID) error {
	if err := s.checkFigure(figure); err != nil {
		return err
	}
	if err := id.validate("accessory"); err != nil {
		return err
	}
	if !id.IsSet() {
		return errs.NewValueIsRequiredError("accessory")
	}
	s.figures[figure-1].toggleAccessory(id)
	return nil
}

// ResetFigure empties the figure.
func (s *Store) ResetFigure(figure int) error {
	if err := s.checkFigure(figure); err != nil {
		return err
	}
	s.figures[figure-1] = Figure{}
	return nil
}

// SetPet selects the order's pet, replacing any previous one.
func (s *Store) SetPet(id ItemID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := id.validate("petId"); err != nil {
		return err
	}
	if !id.IsSet() {
		return errs.NewValueIsRequiredError("petId")
	}
	s.addOns.petID = id
	return nil
}

// ClearPet removes the pet.
func (s *Store) ClearPet() error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.addOns.petID = NoItem
	return nil
}

// SetBackground selects a catalog background and drops any custom one.
func (s *Store) SetBackground(id ItemID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := id.validate("backgroundId"); err != nil {
		return err
	}
	if !id.IsSet() {
		return errs.NewValueIsRequiredError("backgroundId")
	}
	s.addOns.backgroundID = id
	s.addOns.customBackground = ""
	return nil
}

// SetCustomBackground records a reference to a customer-supplied background
// and drops any catalog one.
func (s *Store) SetCustomBackground(ref string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("customBackground")
	}
	s.addOns.customBackground = ref
	s.addOns.backgroundID = NoItem
	return nil
}

func (s Store) checkFigure(figure int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if figure < 1 || figure > s.size {
		return errs.NewValueIsOutOfRangeError("figure", figure, 1, s.size)
	}
	return nil
}
