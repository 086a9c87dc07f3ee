// Package guard provides the ConstructorGuard defensive pattern used by
// domain value objects and commands to reject zero-value instances that
// bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embed it in a struct and set it with NewConstructorGuard
// inside the constructor; a zero-value struct then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was constructed through its
// constructor, otherwise the supplied validationError (or
// ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
