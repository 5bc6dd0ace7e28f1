package selection

import (
	"strings"

	"configurator/internal/pkg/errs"
)

// PetExtraCost is added to the order total when a pet is selected, whatever the plan.
const PetExtraCost int64 = 1000

// AddOns are the order-level extras: at most one pet and one background,
// either a catalog id or a reference to a customer-supplied image.
type AddOns struct {
	petID            ItemID
	backgroundID     ItemID
	customBackground string
}

// RestoreAddOns rebuilds add-ons from stored values.
// A catalog background and a custom one are mutually exclusive.
func RestoreAddOns(petID, backgroundID ItemID, customBackground string) (AddOns, error) {
	if err := petID.validate("petId"); err != nil {
		return AddOns{}, err
	}
	if err := backgroundID.validate("backgroundId"); err != nil {
		return AddOns{}, err
	}
	customBackground = strings.TrimSpace(customBackground)
	if backgroundID.IsSet() && customBackground != "" {
		return AddOns{}, errs.NewValueIsInvalidError("background must be a catalog id or a custom reference, not both")
	}
	return AddOns{petID: petID, backgroundID: backgroundID, customBackground: customBackground}, nil
}

func (a AddOns) PetID() ItemID { return a.petID }

// HasPet reports whether a pet was selected.
func (a AddOns) HasPet() bool { return a.petID.IsSet() }

func (a AddOns) BackgroundID() ItemID { return a.backgroundID }

func (a AddOns) CustomBackground() string { return a.customBackground }

// HasBackground reports whether either kind of background was chosen.
func (a AddOns) HasBackground() bool {
	return a.backgroundID.IsSet() || a.customBackground != ""
}
