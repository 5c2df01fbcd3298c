package model

import (
	"slices"

	"reset-bridger/internal/common"
)

// ClassInterface is the declared interface of one class in one convention.
type ClassInterface struct {
	// Name of the class.
	Name string
	// Convention the declarations are written in.
	Convention Convention
	// Properties in declaration order.
	Properties []PropertyDeclaration
	// Methods in declaration order, hidden members included.
	Methods []MethodDeclaration
	// Superclass is a non-owning back-reference; nil for root classes.
	Superclass *ClassInterface
}

// PropertyDeclaration describes one property.
type PropertyDeclaration struct {
	Name        string
	Type        TypeRef // value type, before nullability is applied
	Nullability Nullability
	Getter      Selector
	Setter      *Selector // nil for read-only properties
	Origin      Origin
	// Override is set when the property redeclares an inherited one.
	Override bool
	// Observer is the before-set clause of an override, if any.
	Observer Observer
}

// MethodDeclaration describes one method.
type MethodDeclaration struct {
	Selector   Selector
	Params     []TypeRef
	Returns    TypeRef
	Visibility Visibility
	Origin     Origin
}

// ReadOnly reports whether the property has no setter.
func (p *PropertyDeclaration) ReadOnly() bool {
	return p.Setter == nil
}

// GetterType returns the type produced by the getter.
func (p *PropertyDeclaration) GetterType() TypeRef {
	switch p.Nullability {
	case Nullable:
		return p.Type.Optional()
	case Unspecified:
		return p.Type.ImplicitlyUnwrapped()
	default:
		return p.Type
	}
}

// SetterParamType returns the type accepted by the setter. Resettable
// setters accept the optional form of the value type.
func (p *PropertyDeclaration) SetterParamType() TypeRef {
	if p.Nullability == Resettable {
		return p.Type.Optional()
	}

	return p.GetterType()
}

// Clone returns a copy that shares no mutable state with p.
func (p PropertyDeclaration) Clone() PropertyDeclaration {
	if p.Setter != nil {
		s := *p.Setter
		p.Setter = &s
	}

	return p
}

// IsVisible reports whether the method is externally callable.
func (m *MethodDeclaration) IsVisible() bool {
	return m.Visibility == Visible
}

// Clone returns a copy that shares no mutable state with m.
func (m MethodDeclaration) Clone() MethodDeclaration {
	m.Params = slices.Clone(m.Params)
	return m
}

// Property returns the property declared on c with the given name.
// Inherited properties are not considered.
func (c *ClassInterface) Property(name string) (PropertyDeclaration, bool) {
	p := common.Find(c.Properties, func(p *PropertyDeclaration) bool { return p.Name == name })
	if p == nil {
		return PropertyDeclaration{}, false
	}

	return *p, true
}

// VisibleMethod returns the visible method declared on c with the given
// selector. Inherited methods are not considered.
func (c *ClassInterface) VisibleMethod(sel Selector) (MethodDeclaration, bool) {
	m := common.Find(c.Methods, func(m *MethodDeclaration) bool { return m.Selector == sel && m.IsVisible() })
	if m == nil {
		return MethodDeclaration{}, false
	}

	return *m, true
}

// VisibleMethods returns the externally visible member list.
func (c *ClassInterface) VisibleMethods() []MethodDeclaration {
	out := make([]MethodDeclaration, 0, len(c.Methods))

	for _, m := range c.Methods {
		if m.IsVisible() {
			out = append(out, m)
		}
	}

	return out
}

// LookupProperty finds a property on c or its nearest ancestor declaring it.
// The returned class is the declaring one.
func (c *ClassInterface) LookupProperty(name string) (PropertyDeclaration, *ClassInterface, bool) {
	for cur := c; cur != nil; cur = cur.Superclass {
		if p, ok := cur.Property(name); ok {
			return p, cur, true
		}
	}

	return PropertyDeclaration{}, nil, false
}

// Clone returns a deep copy of c. The superclass reference is shared.
func (c *ClassInterface) Clone() *ClassInterface {
	out := &ClassInterface{
		Name:       c.Name,
		Convention: c.Convention,
		Superclass: c.Superclass,
		Properties: make([]PropertyDeclaration, len(c.Properties)),
		Methods:    make([]MethodDeclaration, len(c.Methods)),
	}

	for i := range c.Properties {
		out.Properties[i] = c.Properties[i].Clone()
	}

	for i := range c.Methods {
		out.Methods[i] = c.Methods[i].Clone()
	}

	return out
}
