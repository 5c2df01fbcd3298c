package resolve

import (
	"fmt"

	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
)

// Resolve merges explicit and synthesized members of class.
//
// The result lists the explicit members in input order followed by the
// synthesized members in input order. Demoted explicit members stay in the
// list with Hidden visibility. Diagnostics follow the synthesized order.
// Neither input slice is modified.
func Resolve(
	class string,
	explicit, synthesized []model.MethodDeclaration,
) ([]model.MethodDeclaration, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	winners := make(map[model.Selector]struct{}, len(synthesized))
	for i := range synthesized {
		winners[synthesized[i].Selector] = struct{}{}
	}

	out := make([]model.MethodDeclaration, 0, len(explicit)+len(synthesized))
	shadowed := make(map[model.Selector][]int)

	for i := range explicit {
		m := explicit[i].Clone()

		if _, ok := winners[m.Selector]; ok && m.IsVisible() {
			m.Visibility = model.Hidden
			shadowed[m.Selector] = append(shadowed[m.Selector], len(out))
		}

		out = append(out, m)
	}

	reported := make(map[model.Selector]struct{}, len(shadowed))

	for i := range synthesized {
		m := synthesized[i].Clone()
		m.Visibility = model.Visible
		m.Origin = model.OriginSynthesized
		out = append(out, m)

		if _, done := reported[m.Selector]; done {
			continue
		}

		reported[m.Selector] = struct{}{}

		for _, idx := range shadowed[m.Selector] {
			diags.Add(conflictDiagnostic(class, m, out[idx]))
		}
	}

	return out, diags
}

func conflictDiagnostic(class string, synth, hidden model.MethodDeclaration) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Kind:     diagnostic.KindResetNameConflict,
		Message: fmt.Sprintf(
			"synthesized reset accessor %s shadows explicit method %s; the explicit method is hidden",
			synth.Selector, hidden.Selector),
		Class:       class,
		Subject:     hidden.Selector.String(),
		Suggestions: []string{"rename or remove the explicit " + hidden.Selector.Name + " method"},
	}
}
