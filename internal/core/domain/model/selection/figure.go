package selection

import (
	"errors"
	"fmt"

	"configurator/internal/pkg/errs"
)

// MaxAccessories is the hard cap of accessories on one figure, whatever the plan.
const MaxAccessories = 2

// Figure is the selection state of one figure. The zero value is an empty figure.
type Figure struct {
	sex  Sex
	hair ItemID
	face ItemID
	body ItemID
	legs ItemID

	accessories [MaxAccessories]ItemID
	accCount    int
}

// FigureParams carries raw figure values, as read back from a draft or an order payload.
type FigureParams struct {
	Sex         Sex
	Hair        ItemID
	Face        ItemID
	Body        ItemID
	Legs        ItemID
	Accessories []ItemID
}

// RestoreFigure rebuilds a Figure from stored values. Accessories keep their
// order; duplicates, more than MaxAccessories entries, or unset ids are rejected.
func RestoreFigure(p FigureParams) (Figure, error) {
	if err := errors.Join(
		p.Sex.Validate(),
		p.Hair.validate("hair"),
		p.Face.validate("face"),
		p.Body.validate("body"),
		p.Legs.validate("legs"),
	); err != nil {
		return Figure{}, err
	}

	if len(p.Accessories) > MaxAccessories {
		return Figure{}, errs.NewValueIsOutOfRangeError("accessories", len(p.Accessories), 0, MaxAccessories)
	}

	f := Figure{sex: p.Sex, hair: p.Hair, face: p.Face, body: p.Body, legs: p.Legs}
	for _, id := range p.Accessories {
		if err := id.validate("accessory"); err != nil {
			return Figure{}, err
		}
		if !id.IsSet() {
			return Figure{}, errs.NewValueIsInvalidErrorWithCause("accessory", errors.New("accessory id is unset"))
		}
		if f.HasAccessory(id) {
			return Figure{}, errs.NewValueIsInvalidErrorWithCause(
				"accessory",
				fmt.Errorf("%d is listed twice", id),
			)
		}
		f.accessories[f.accCount] = id
		f.accCount++
	}

	return f, nil
}

func (f Figure) Sex() Sex { return f.sex }

// Attribute returns the item chosen for a single-valued category, or NoItem.
func (f Figure) Attribute(c Category) ItemID {
	switch c {
	case Hair:
		return f.hair
	case Face:
		return f.face
	case Body:
		return f.body
	case Legs:
		return f.legs
	default:
		return NoItem
	}
}

// Accessories returns the accessories in insertion order.
func (f Figure) Accessories() []ItemID {
	out := make([]ItemID, f.accCount)
	copy(out, f.accessories[:f.accCount])
	return out
}

// AccessoryCount returns the number of selected accessories.
func (f Figure) AccessoryCount() int {
	return f.accCount
}

// HasAccessory reports whether id is already selected.
func (f Figure) HasAccessory(id ItemID) bool {
	for i := range f.accCount {
		if f.accessories[i] == id {
			return true
		}
	}
	return false
}

// IsEmpty reports whether nothing was selected on the figure.
func (f Figure) IsEmpty() bool {
	return f == Figure{}
}

// Params exposes the raw values for snapshots.
func (f Figure) Params() FigureParams {
	return FigureParams{
		Sex:         f.sex,
		Hair:        f.hair,
		Face:        f.face,
		Body:        f.body,
		Legs:        f.legs,
		Accessories: f.Accessories(),
	}
}

func (f *Figure) setSex(sex Sex) {
	if f.sex == sex {
		return
	}
	f.sex = sex
	f.hair = NoItem
	f.face = NoItem
}

// setAttribute overwrites the slot; choosing the current item again clears it.
func (f *Figure) setAttribute(c Category, id ItemID) {
	slot := f.slot(c)
	if *slot == id {
		*slot = NoItem
		return
	}
	*slot = id
}

// toggleAccessory removes id if present, otherwise appends it when there is room.
func (f *Figure) toggleAccessory(id ItemID) {
	for i := range f.accCount {
		if f.accessories[i] != id {
			continue
		}
		copy(f.accessories[i:], f.accessories[i+1:f.accCount])
		f.accCount--
		f.accessories[f.accCount] = NoItem
		return
	}

	if f.accCount < MaxAccessories {
		f.accessories[f.accCount] = id
		f.accCount++
	}
}

func (f *Figure) slot(c Category) *ItemID {
	switch c {
	case Hair:
		return &f.hair
	case Face:
		return &f.face
	case Body:
		return &f.body
	default:
		return &f.legs
	}
}
