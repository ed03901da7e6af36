// Package guard provides the constructor guard used by value objects, commands
// and queries to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it in a
// struct, set it with NewConstructorGuard inside the constructor and call
// Validate before using the value.
//
// Example:
//
//	type Quote struct {
//	    persons int
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewQuote(persons int) (Quote, error) {
//	    if persons <= 0 {
//	        return Quote{}, errors.New("persons must be positive")
//	    }
//	    return Quote{persons: persons, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
