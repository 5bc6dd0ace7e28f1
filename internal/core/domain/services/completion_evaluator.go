package services

import (
	"configurator/internal/core/domain/model/plan"
	"configurator/internal/core/domain/model/selection"
)

// CompletionEvaluator answers completion questions about a store under a plan.
//
// A figure is complete when its sex is set, hair, face, body and legs are all
// chosen, and at least one accessory is selected. There is no partial credit.
//
// Example:
//
//	eval := services.NewCompletionEvaluator(p, store)
//	if !eval.IsOrderSubmittable() {
//	    fmt.Printf("%d/%d figures complete\n", eval.CompletedFigureCount(), p.MaxFigures())
//	}
type CompletionEvaluator struct {
	plan  plan.Plan
	store selection.Store
}

// NewCompletionEvaluator binds an evaluator to the current plan and store.
func NewCompletionEvaluator(p plan.Plan, store selection.Store) CompletionEvaluator {
	return CompletionEvaluator{plan: p, store: store}
}

// IsCategoryComplete reports whether the category is filled on figure fig.
// For accessories that means at least one is selected. Figures outside the
// store are never complete.
func (e CompletionEvaluator) IsCategoryComplete(fig int, category selection.Category) bool {
	f, err := e.store.Figure(fig)
	if err != nil {
		return false
	}
	return isCategoryComplete(f, category)
}

// IsFigureComplete reports whether figure fig satisfies every completion rule.
func (e CompletionEvaluator) IsFigureComplete(fig int) bool {
	f, err := e.store.Figure(fig)
	if err != nil {
		return false
	}
	return IsFigureComplete(f)
}

// CompletedFigureCount counts the complete figures among 1..plan.MaxFigures().
func (e CompletionEvaluator) CompletedFigureCount() int {
	count := 0
	for fig := 1; fig <= e.plan.MaxFigures(); fig++ {
		if e.IsFigureComplete(fig) {
			count++
		}
	}
	return count
}

// RequiredFigureCount is the number of figures the plan requires.
func (e CompletionEvaluator) RequiredFigureCount() int {
	return e.plan.MaxFigures()
}

// IsOrderSubmittable reports whether every figure slot of the plan is complete.
func (e CompletionEvaluator) IsOrderSubmittable() bool {
	return e.plan.MaxFigures() > 0 && e.CompletedFigureCount() == e.plan.MaxFigures()
}

// IsFigureComplete applies the completion rule to a single figure.
func IsFigureComplete(f selection.Figure) bool {
	if !f.Sex().IsSet() {
		return false
	}
	for _, c := range selection.AllCategories {
		if !isCategoryComplete(f, c) {
			return false
		}
	}
	return true
}

func isCategoryComplete(f selection.Figure, category selection.Category) bool {
	if category == selection.Accessories {
		return f.AccessoryCount() > 0
	}
	return f.Attribute(category).IsSet()
}
