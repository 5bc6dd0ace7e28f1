package selection

import (
	"fmt"

	"configurator/internal/pkg/errs"
)

// Category is one of the selectable attribute groups of a figure.
type Category int

const (
	CategoryUnknown Category = iota
	Hair
	Face
	Body
	Legs
	Accessories
)

// AttributeCategories are the single-valued categories, in display order.
var AttributeCategories = []Category{Hair, Face, Body, Legs}

// AllCategories lists every category a figure must complete, in display order.
var AllCategories = []Category{Hair, Face, Body, Legs, Accessories}

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Hair:        "hair",
		Face:        "face",
		Body:        "body",
		Legs:        "legs",
		Accessories: "accs",
	}
}

// ParseCategory maps the wire names ("hair", "face", "body", "legs", "accs") to a Category.
func ParseCategory(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// IsAttribute reports whether c holds a single item id.
func (c Category) IsAttribute() bool {
	return c == Hair || c == Face || c == Body || c == Legs
}

// IsSexSpecific reports whether the catalog for c depends on the figure's sex.
func (c Category) IsSexSpecific() bool {
	return c == Hair || c == Face
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}
