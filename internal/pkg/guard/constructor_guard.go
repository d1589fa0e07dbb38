// Package guard implements the constructor-guard pattern: a small embedded
// flag that distinguishes objects built through their designated constructor
// from zero-value instances. Commands, queries, and value objects embed a
// ConstructorGuard so that Validate() can reject structs that bypassed
// construction-time validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid; constructors obtain a valid guard via NewConstructorGuard.
//
// Example:
//
//	var ErrCmdIsNotConstructed = errors.New("command must be created via its constructor")
//
//	type Command struct {
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewCommand(reason string) (Command, error) {
//	    if reason == "" {
//	        return Command{}, errors.New("reason is required")
//	    }
//	    return Command{reason: reason, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCmdIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as built
// through its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed, otherwise the
// supplied validation error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
