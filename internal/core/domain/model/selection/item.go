package selection

import (
	"fmt"

	"configurator/internal/pkg/errs"
)

// ItemID identifies a part in the catalog. NoItem marks an empty slot.
type ItemID int64

// NoItem is the unset value of an attribute slot.
const NoItem ItemID = 0

// IsSet reports whether the id references a catalog item.
func (id ItemID) IsSet() bool {
	return id != NoItem
}

func (id ItemID) validate(param string) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not a valid item id", id))
	}
	return nil
}
