package selection

import (
	"fmt"

	"configurator/internal/pkg/errs"
)

// Sex selects which hair and face catalogs apply to a figure.
type Sex int

const (
	SexUnset Sex = iota
	Male
	Female
)

func getSexStrings() map[Sex]string {
	return map[Sex]string{
		SexUnset: "",
		Male:     "male",
		Female:   "female",
	}
}

// ParseSex maps "male", "female" or "" (unset) to a Sex.
func ParseSex(s string) (Sex, error) {
	for sex, str := range getSexStrings() {
		if str == s {
			return sex, nil
		}
	}
	return SexUnset, errs.NewValueIsInvalidErrorWithCause("sex", fmt.Errorf("%q is not a valid sex", s))
}

// Validate rejects values outside the enumeration.
func (s Sex) Validate() error {
	if _, ok := getSexStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sex", fmt.Errorf("%d is not a valid sex", s))
	}
	return nil
}

// IsSet reports whether a sex was chosen.
func (s Sex) IsSet() bool {
	return s == Male || s == Female
}

func (s Sex) String() string {
	return getSexStrings()[s]
}
