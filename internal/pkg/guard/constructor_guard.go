// Package guard provides ConstructorGuard, a marker embedded in commands and queries
// to tell values built by their constructor apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is valid only when obtained from NewConstructorGuard.
//
// Example:
//
//	type PriceCartQuery struct {
//	    lines []CartLine
//	    guard guard.ConstructorGuard
//	}
//
//	func (q PriceCartQuery) Validate() error {
//	    return q.guard.Validate(ErrPriceCartQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
