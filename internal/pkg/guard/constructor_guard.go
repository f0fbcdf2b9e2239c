// Package guard lets value objects and entities tell a constructed instance
// apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error for an unconstructed guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by that struct's
// constructor. A zero-value struct therefore carries a zero-value guard and
// fails Validate.
//
// Example usage:
//
//	var ErrLineNotConstructed = errors.New("Line must be created via NewLine")
//
//	type Line struct {
//	    sku   string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewLine(sku string) Line {
//	    return Line{sku: sku, guard: guard.NewConstructorGuard()}
//	}
//
//	func (l Line) Validate() error {
//	    return l.guard.Validate(ErrLineNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
