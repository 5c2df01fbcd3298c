package description

import (
	"fmt"

	"reset-bridger/internal/model"
	"reset-bridger/internal/naming"
)

// FromModel converts classes back into a File. All classes must share one
// convention. Values equal to the schema defaults are left out.
func FromModel(classes []*model.ClassInterface) (*File, error) {
	f := &File{Version: CurrentVersion, Classes: make([]Class, 0, len(classes))}

	for i, c := range classes {
		if c == nil {
			return nil, fmt.Errorf("class %d is nil", i)
		}

		if i == 0 {
			f.Convention = c.Convention.String()
		} else if f.Convention != c.Convention.String() {
			return nil, fmt.Errorf("class %s is in the %s convention, expected %s", c.Name, c.Convention, f.Convention)
		}

		f.Classes = append(f.Classes, FromClass(c))
	}

	if f.Convention == "" {
		f.Convention = model.ConventionSource.String()
	}

	return f, nil
}

// FromClass converts one class. The superclass is referenced by name.
func FromClass(c *model.ClassInterface) Class {
	out := Class{Name: c.Name}
	if c.Superclass != nil {
		out.Superclass = c.Superclass.Name
	}

	for i := range c.Properties {
		out.Properties = append(out.Properties, fromProperty(&c.Properties[i]))
	}

	for i := range c.Methods {
		out.Methods = append(out.Methods, fromMethod(&c.Methods[i]))
	}

	return out
}

func fromProperty(p *model.PropertyDeclaration) Property {
	out := Property{
		Name:     p.Name,
		Type:     p.Type.String(),
		ReadOnly: p.ReadOnly(),
		Override: p.Override,
	}

	if p.Nullability != model.NonNull {
		out.Nullability = p.Nullability.String()
	}

	if p.Getter.Name != p.Name {
		out.Getter = p.Getter.Name
	}

	if p.Setter != nil && p.Setter.Name != naming.SetterName(p.Name) {
		out.Setter = p.Setter.Name
	}

	if p.Observer != model.ObserverNone {
		out.Observer = p.Observer.String()
	}

	if p.Origin != model.OriginExplicit {
		out.Origin = p.Origin.String()
	}

	return out
}

func fromMethod(m *model.MethodDeclaration) Method {
	out := Method{
		Name:   m.Selector.Name,
		Hidden: !m.IsVisible(),
	}

	for _, t := range m.Params {
		out.Params = append(out.Params, t.String())
	}

	if m.Returns != model.Void {
		out.Returns = m.Returns.String()
	}

	if m.Origin != model.OriginExplicit {
		out.Origin = m.Origin.String()
	}

	return out
}
