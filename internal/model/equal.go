package model

import (
	"cmp"
	"slices"
)

// Equivalent reports whether a and b declare the same interface up to member
// ordering. Superclasses are compared by name.
func Equivalent(a, b *ClassInterface) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Name != b.Name || a.Convention != b.Convention {
		return false
	}

	if superName(a) != superName(b) {
		return false
	}

	pa, pb := SortedProperties(a.Properties), SortedProperties(b.Properties)
	if !slices.EqualFunc(pa, pb, PropertiesEqual) {
		return false
	}

	ma, mb := SortedMethods(a.Methods), SortedMethods(b.Methods)

	return slices.EqualFunc(ma, mb, MethodsEqual)
}

// PropertiesEqual compares two property declarations field by field.
func PropertiesEqual(a, b PropertyDeclaration) bool {
	if (a.Setter == nil) != (b.Setter == nil) {
		return false
	}

	if a.Setter != nil && *a.Setter != *b.Setter {
		return false
	}

	return a.Name == b.Name &&
		a.Type == b.Type &&
		a.Nullability == b.Nullability &&
		a.Getter == b.Getter &&
		a.Origin == b.Origin &&
		a.Override == b.Override &&
		a.Observer == b.Observer
}

// MethodsEqual compares two method declarations field by field.
func MethodsEqual(a, b MethodDeclaration) bool {
	return a.Selector == b.Selector &&
		slices.Equal(a.Params, b.Params) &&
		a.Returns == b.Returns &&
		a.Visibility == b.Visibility &&
		a.Origin == b.Origin
}

// SortedProperties returns a copy of props ordered by name.
func SortedProperties(props []PropertyDeclaration) []PropertyDeclaration {
	out := slices.Clone(props)
	slices.SortStableFunc(out, func(x, y PropertyDeclaration) int {
		return cmp.Compare(x.Name, y.Name)
	})

	return out
}

// SortedMethods returns a copy of methods ordered by selector, then
// visibility, then origin.
func SortedMethods(methods []MethodDeclaration) []MethodDeclaration {
	out := slices.Clone(methods)
	slices.SortStableFunc(out, func(x, y MethodDeclaration) int {
		return cmp.Or(
			cmp.Compare(x.Selector.Name, y.Selector.Name),
			cmp.Compare(x.Selector.Arity, y.Selector.Arity),
			cmp.Compare(x.Visibility, y.Visibility),
			cmp.Compare(x.Origin, y.Origin),
		)
	})

	return out
}

func superName(c *ClassInterface) string {
	if c.Superclass == nil {
		return ""
	}

	return c.Superclass.Name
}
