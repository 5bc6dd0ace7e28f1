// Package guard provides a marker that lets commands, queries and value objects
// detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the caller
// passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not usable.
// Constructors set it with NewConstructorGuard, and the owning type's Validate
// method delegates to ConstructorGuard.Validate.
//
// Example:
//
//	type ConfirmDraftCommand struct {
//	    draftID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ConfirmDraftCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmDraftCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
