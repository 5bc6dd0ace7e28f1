// Package plan defines the priced tier a customer picks before configuring figures.
//
// A Plan bounds how many figures an order holds and how many accessories per
// figure are included in the base price. It is immutable once constructed.
package plan

import (
	"errors"
	"strings"
	"unicode/utf8"

	"configurator/internal/pkg/errs"
	"configurator/internal/pkg/guard"
)

const (
	// MinFigures is the smallest figure count a plan may allow.
	MinFigures = 1
	// MaxFigures is the largest figure count any plan may allow.
	MaxFigures = 4

	// MaxIDLength and MaxNameLength are counted in characters.
	MaxIDLength   = 64
	MaxNameLength = 128
)

// ErrPlanIsNotConstructed is returned by Validate for plans not built through NewPlan.
var ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan constructor")

// Plan is a priced tier. Prices are integers in the smallest currency unit.
type Plan struct { //nolint:recvcheck //using for validation
	id               string
	name             string
	price            int64
	maxFigures       int
	maxAccsPerFigure int
	accExtraCost     int64
	allowsExtra      bool

	guard guard.ConstructorGuard
}

// Params groups the raw plan attributes accepted by NewPlan.
type Params struct {
	ID               string
	Name             string
	Price            int64
	MaxFigures       int
	MaxAccsPerFigure int
	AccExtraCost     int64
	AllowsExtra      bool
}

// NewPlan validates p and returns an immutable Plan.
//
// Rules:
//   - id and name are required, at most MaxIDLength and MaxNameLength characters
//   - price and accExtraCost are non-negative
//   - maxFigures is within [MinFigures, MaxFigures]
//   - maxAccsPerFigure is non-negative
func NewPlan(p Params) (Plan, error) {
	pl := Plan{
		allowsExtra: p.AllowsExtra,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pl.setID(p.ID),
		pl.setName(p.Name),
		pl.setPrice(p.Price),
		pl.setMaxFigures(p.MaxFigures),
		pl.setMaxAccsPerFigure(p.MaxAccsPerFigure),
		pl.setAccExtraCost(p.AccExtraCost),
	); err != nil {
		return Plan{}, err
	}

	return pl, nil
}

// Validate ensures the plan was created through NewPlan.
func (p Plan) Validate() error {
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

func (p Plan) ID() string { return p.id }

func (p Plan) Name() string { return p.name }

// Price is the base price covering every figure and the included accessories.
func (p Plan) Price() int64 { return p.price }

// MaxFigures is the number of figure slots an order under this plan must fill.
func (p Plan) MaxFigures() int { return p.maxFigures }

// MaxAccsPerFigure is the free accessory quota per figure.
func (p Plan) MaxAccsPerFigure() int { return p.maxAccsPerFigure }

// AccExtraCost is charged once per accessory above the free quota.
func (p Plan) AccExtraCost() int64 { return p.accExtraCost }

// AllowsExtra tells presentation whether to advertise paid extra accessories.
func (p Plan) AllowsExtra() bool { return p.allowsExtra }

// Params returns the plan attributes, for snapshots and transport.
func (p Plan) Params() Params {
	return Params{
		ID:               p.id,
		Name:             p.name,
		Price:            p.price,
		MaxFigures:       p.maxFigures,
		MaxAccsPerFigure: p.maxAccsPerFigure,
		AccExtraCost:     p.accExtraCost,
		AllowsExtra:      p.allowsExtra,
	}
}

// IsSlotCompatible reports whether selections made under p keep their meaning
// under other: same number of figure slots and same free accessory quota.
func (p Plan) IsSlotCompatible(other Plan) bool {
	return p.maxFigures == other.maxFigures && p.maxAccsPerFigure == other.maxAccsPerFigure
}

func (p *Plan) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("plan id")
	}
	if n := utf8.RuneCountInString(id); n > MaxIDLength {
		return errs.NewValueIsOutOfRangeError("plan id length", n, 1, MaxIDLength)
	}
	p.id = id
	return nil
}

func (p *Plan) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("plan name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("plan name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Plan) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	p.price = price
	return nil
}

func (p *Plan) setMaxFigures(maxFigures int) error {
	if maxFigures < MinFigures || maxFigures > MaxFigures {
		return errs.NewValueIsOutOfRangeError("maxFigures", maxFigures, MinFigures, MaxFigures)
	}
	p.maxFigures = maxFigures
	return nil
}

func (p *Plan) setMaxAccsPerFigure(maxAccs int) error {
	if maxAccs < 0 {
		return errs.NewValueIsOutOfRangeError("maxAccsPerFigure", maxAccs, 0, "unbounded")
	}
	p.maxAccsPerFigure = maxAccs
	return nil
}

func (p *Plan) setAccExtraCost(cost int64) error {
	if cost < 0 {
		return errs.NewValueIsOutOfRangeError("accExtraCost", cost, 0, "unbounded")
	}
	p.accExtraCost = cost
	return nil
}
