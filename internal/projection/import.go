package projection

import (
	"fmt"

	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
	"reset-bridger/internal/naming"
	"reset-bridger/internal/resolve"
)

// Import projects a source-convention class into the target convention.
//
// NonNull, Nullable and Unspecified properties pass through unchanged.
// A Resettable property becomes a NonNull property of the same type, and a
// zero-argument reset method named naming.DeriveResetName(property) is
// synthesized for it. Synthesized methods win over explicit methods with the
// same selector (see package resolve). A derived reset name that collides
// with a property accessor of the class is malformed input.
//
// Only malformed input returns an error, wrapping model.ErrMalformedInput.
func Import(src *model.ClassInterface, opts ...Option) (*Result, error) {
	if err := model.Validate(src); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	if src.Convention != model.ConventionSource {
		return nil, fmt.Errorf("import: %w",
			model.Malformed(src.Name, "expected a %s-convention class, got %s", model.ConventionSource, src.Convention))
	}

	super, err := linkSuperclass(src, buildOptions(opts), model.ConventionTarget, Import)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", src.Name, err)
	}

	res := &Result{
		Class: &model.ClassInterface{
			Name:       src.Name,
			Convention: model.ConventionTarget,
			Properties: make([]model.PropertyDeclaration, 0, len(src.Properties)),
			Superclass: super,
		},
	}

	var synthesized []model.MethodDeclaration

	owners := make(map[string]string)
	accessors := propertyAccessors(src)

	for i := range src.Properties {
		p := src.Properties[i].Clone()

		if p.Nullability == model.Resettable {
			resetName := naming.DeriveResetName(p.Name)
			if owner, dup := owners[resetName]; dup {
				return nil, fmt.Errorf("import: %w", model.Malformed(src.Name,
					"properties %q and %q both derive reset method %q", owner, p.Name, resetName))
			}

			if other, taken := accessors[model.Selector{Name: resetName}]; taken {
				return nil, fmt.Errorf("import: %w", model.Malformed(src.Name,
					"reset method %q of property %q collides with an accessor of property %q", resetName, p.Name, other))
			}

			owners[resetName] = p.Name

			if p.Type.IsOptionalLike() {
				res.Diagnostics.Add(ambiguousOptional(src.Name, &p))
			}

			p.Nullability = model.NonNull
			synthesized = append(synthesized, resetMethod(resetName))
			res.Bindings = append(res.Bindings, model.ResetBinding{
				Property:  p.Name,
				ResetName: resetName,
				Direction: model.ImportGenerated,
			})
		}

		res.Class.Properties = append(res.Class.Properties, p)
	}

	methods, diags := resolve.Resolve(src.Name, src.Methods, synthesized)
	res.Class.Methods = methods
	res.Diagnostics.Merge(diags)

	return res, nil
}

// propertyAccessors maps every getter and setter selector of c's own
// properties to the property declaring it.
func propertyAccessors(c *model.ClassInterface) map[model.Selector]string {
	out := make(map[model.Selector]string, 2*len(c.Properties))

	for i := range c.Properties {
		p := &c.Properties[i]
		out[p.Getter] = p.Name

		if p.Setter != nil {
			out[*p.Setter] = p.Name
		}
	}

	return out
}

func resetMethod(name string) model.MethodDeclaration {
	return model.MethodDeclaration{
		Selector:   model.Selector{Name: name},
		Returns:    model.Void,
		Visibility: model.Visible,
		Origin:     model.OriginSynthesized,
	}
}

func ambiguousOptional(class string, p *model.PropertyDeclaration) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Kind:     diagnostic.KindAmbiguousOptionalReset,
		Message: fmt.Sprintf("resettable property %s has optional value type %s; its setter accepts %s",
			p.Name, p.Type, p.SetterParamType()),
		Class:   class,
		Subject: p.Name,
	}
}

// linkSuperclass returns the output superclass: the one passed with
// WithSuperclass, or the input superclass projected with project.
func linkSuperclass(
	in *model.ClassInterface,
	o options,
	want model.Convention,
	project func(*model.ClassInterface, ...Option) (*Result, error),
) (*model.ClassInterface, error) {
	if o.hasSuperclass {
		return checkSuperclass(in, o.superclass, want)
	}

	if in.Superclass == nil {
		return nil, nil
	}

	r, err := project(in.Superclass)
	if err != nil {
		return nil, fmt.Errorf("superclass %s: %w", in.Superclass.Name, err)
	}

	return r.Class, nil
}

func checkSuperclass(in, super *model.ClassInterface, want model.Convention) (*model.ClassInterface, error) {
	switch {
	case super == nil && in.Superclass == nil:
		return nil, nil
	case super == nil || in.Superclass == nil:
		return nil, model.Malformed(in.Name, "superclass link does not match the declared superclass")
	case super.Name != in.Superclass.Name:
		return nil, model.Malformed(in.Name, "superclass link %s does not match declared superclass %s",
			super.Name, in.Superclass.Name)
	case super.Convention != want:
		return nil, model.Malformed(in.Name, "superclass link %s is in the %s convention", super.Name, super.Convention)
	}

	return super, nil
}
