package order

import (
	"fmt"
	"strings"

	"configurator/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending is set when the order is created.
	Pending

	// Processing means the figures are being assembled.
	Processing

	// Completed means the order was delivered. Terminal.
	Completed

	// Cancelled means the order was abandoned. Terminal.
	Cancelled
)

// AllStatuses lists every valid status in lifecycle order.
var AllStatuses = []Status{Pending, Processing, Completed, Cancelled}

var statusNames = map[Status]string{
	Pending:    "pending",
	Processing: "processing",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

// transitions lists the legal targets of every non-terminal status.
var transitions = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Completed, Cancelled},
}

// ParseStatus converts the wire name of a status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the four lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is a legal next status.
// Staying on the current status is always allowed.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return s.Validate() == nil
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the status after moving from s to target.
//
// Returns:
//   - (s, nil) when target equals s, terminal states included
//   - (target, nil) on a legal transition
//   - (Unknown, *TransitionError) on an illegal one
//   - (Unknown, error) when either status is invalid
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Processing)
//	// next == order.Processing
//	_, err = order.Completed.TransitionTo(order.Pending)
//	// errors.As(err, new(*order.TransitionError)) == true
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &TransitionError{From: s, To: target}
	}
	return target, nil
}

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("order is %s and cannot change to %s", e.From, e.To)
	}
	return fmt.Sprintf("order status cannot change from %s to %s", e.From, e.To)
}

// Unwrap lets errors.Is(err, errs.ErrConflict) match.
func (e *TransitionError) Unwrap() error {
	return errs.ErrConflict
}
