package model

import "reset-bridger/internal/naming"

// IsResettable reports whether property is resettable as seen from c.
//
// In the source convention the nearest declaration must be Resettable. In the
// target convention it must be NonNull and read-write, and either its
// declaring class has a visible zero-argument reset method or the property
// it overrides is itself resettable. c may be nil.
func IsResettable(c *ClassInterface, property string) bool {
	if c == nil {
		return false
	}

	p, decl, ok := c.LookupProperty(property)
	if !ok {
		return false
	}

	if decl.Convention == ConventionSource {
		return p.Nullability == Resettable
	}

	if p.Nullability != NonNull || p.ReadOnly() {
		return false
	}

	if _, ok := decl.VisibleMethod(ResetSelector(property)); ok {
		return true
	}

	return IsResettable(decl.Superclass, property)
}

// ResetSelector returns the zero-argument selector of property's reset method.
func ResetSelector(property string) Selector {
	return Selector{Name: naming.DeriveResetName(property)}
}
