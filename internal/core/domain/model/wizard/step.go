package wizard

import (
	"fmt"

	"configurator/internal/pkg/errs"
)

// Step is the position of a draft in the flow.
type Step int

const (
	StepUnknown Step = iota
	PlanSelection
	Configuring
	ContactInfo
	Summary
	Confirmed
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		PlanSelection: "plan_selection",
		Configuring:   "configuring",
		ContactInfo:   "contact_info",
		Summary:       "summary",
		Confirmed:     "confirmed",
	}
}

// ParseStep converts a wire name back to a Step.
func ParseStep(s string) (Step, error) {
	for step, name := range getStepStrings() {
		if name == s {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%q is not a valid step", s))
}

func (s Step) Validate() error {
	if _, ok := getStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

func (s Step) String() string {
	if name, ok := getStepStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// HasPlan reports whether a draft at this step must hold a plan.
func (s Step) HasPlan() bool {
	return s >= Configuring && s <= Confirmed
}
