package projection

import (
	"fmt"

	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
	"reset-bridger/internal/resolve"
)

// Export projects a target-convention class back into the source convention.
//
// A NonNull read-write property P becomes Resettable when the class declares
// a visible zero-argument method naming.DeriveResetName(P), or when P
// overrides an inherited resettable property with the resettable observer
// spelling. A plain override of a resettable ancestor property stays NonNull.
// A matched reset method is folded into the setter and dropped from the
// exported members; a hidden explicit method it had shadowed becomes visible
// again. Any other property passes through unchanged.
//
// An override observing an inherited resettable property with the plain
// before-set spelling is reported as MissingOverrideOperator and left out of
// the output. The rest of the class is still exported. A Resettable result
// with an optional-like type gets an AmbiguousOptionalReset warning.
func Export(tgt *model.ClassInterface, opts ...Option) (*Result, error) {
	if err := model.Validate(tgt); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	if tgt.Convention != model.ConventionTarget {
		return nil, fmt.Errorf("export: %w",
			model.Malformed(tgt.Name, "expected a %s-convention class, got %s", model.ConventionTarget, tgt.Convention))
	}

	super, err := linkSuperclass(tgt, buildOptions(opts), model.ConventionSource, Export)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", tgt.Name, err)
	}

	res := &Result{
		Class: &model.ClassInterface{
			Name:       tgt.Name,
			Convention: model.ConventionSource,
			Properties: make([]model.PropertyDeclaration, 0, len(tgt.Properties)),
			Superclass: super,
		},
	}

	consumed := make(map[model.Selector]struct{})

	for i := range tgt.Properties {
		p := tgt.Properties[i].Clone()

		if p.Nullability != model.NonNull || p.ReadOnly() {
			res.Class.Properties = append(res.Class.Properties, p)
			continue
		}

		resetSel := model.ResetSelector(p.Name)
		_, local := tgt.VisibleMethod(resetSel)
		inherited := model.IsResettable(tgt.Superclass, p.Name)

		if local {
			consumed[resetSel] = struct{}{}
		}

		if inherited && p.Observer == model.ObserverWillSet {
			res.Diagnostics.Add(missingOverrideOperator(tgt.Name, &p))
			continue
		}

		if !local && !(inherited && p.Observer == model.ObserverResettableWillSet) {
			res.Class.Properties = append(res.Class.Properties, p)
			continue
		}

		if p.Type.IsOptionalLike() {
			res.Diagnostics.Add(ambiguousOptional(tgt.Name, &p))
		}

		p.Nullability = model.Resettable
		res.Class.Properties = append(res.Class.Properties, p)
		res.Bindings = append(res.Bindings, model.ResetBinding{
			Property:  p.Name,
			ResetName: resetSel.Name,
			Direction: model.ExportConsumed,
		})
	}

	explicit := make([]model.MethodDeclaration, 0, len(tgt.Methods))

	for i := range tgt.Methods {
		m := tgt.Methods[i].Clone()

		if _, ok := consumed[m.Selector]; ok {
			if m.IsVisible() {
				continue
			}

			// Nothing shadows it in the source convention.
			m.Visibility = model.Visible
		}

		explicit = append(explicit, m)
	}

	methods, diags := resolve.Resolve(tgt.Name, explicit, nil)
	res.Class.Methods = methods
	res.Diagnostics.Merge(diags)

	return res, nil
}

func missingOverrideOperator(class string, p *model.PropertyDeclaration) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Kind:     diagnostic.KindMissingOverrideOperator,
		Message: fmt.Sprintf("override of resettable property %s observes it with %s; use %s",
			p.Name, model.ObserverWillSet, model.ObserverResettableWillSet),
		Class:       class,
		Subject:     p.Name,
		Suggestions: []string{"spell the observer as " + model.ObserverResettableWillSet.String()},
	}
}
