package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
)

func TestExportDetectsResetMethod(t *testing.T) {
	tgt := targetClass("Person",
		[]model.PropertyDeclaration{prop("firstName", stringType, model.NonNull)},
		method("resetFirstName"), method("greet"),
	)

	res, err := Export(tgt)
	require.NoError(t, err)

	out := res.Class
	assert.Equal(t, model.ConventionSource, out.Convention)
	require.Len(t, out.Properties, 1)

	p := out.Properties[0]
	assert.Equal(t, model.Resettable, p.Nullability)
	assert.Equal(t, stringType, p.GetterType())
	assert.Equal(t, stringType.Optional(), p.SetterParamType())

	require.Len(t, out.Methods, 1)
	assert.Equal(t, "greet", out.Methods[0].Selector.Name)

	assert.Equal(t, []model.ResetBinding{{Property: "firstName", ResetName: "resetFirstName", Direction: model.ExportConsumed}}, res.Bindings)
	assert.Equal(t, 0, res.Diagnostics.Len())
}

func TestExportRequiresZeroArity(t *testing.T) {
	tgt := targetClass("Person",
		[]model.PropertyDeclaration{prop("firstName", stringType, model.NonNull)},
		method("resetFirstName", boolType),
	)

	res, err := Export(tgt)
	require.NoError(t, err)

	out := res.Class
	require.Len(t, out.Properties, 1)
	assert.Equal(t, model.NonNull, out.Properties[0].Nullability)

	require.Len(t, out.Methods, 1)
	assert.Equal(t, model.Selector{Name: "resetFirstName", Arity: 1}, out.Methods[0].Selector)
	assert.True(t, out.Methods[0].IsVisible())
	assert.Empty(t, res.Bindings)
}

func TestExportIgnoresHiddenResetMethod(t *testing.T) {
	hidden := method("resetFirstName")
	hidden.Visibility = model.Hidden

	tgt := targetClass("Person",
		[]model.PropertyDeclaration{prop("firstName", stringType, model.NonNull)},
		hidden,
	)

	res, err := Export(tgt)
	require.NoError(t, err)
	assert.Equal(t, model.NonNull, res.Class.Properties[0].Nullability)
	require.Len(t, res.Class.Methods, 1)
	assert.Equal(t, model.Hidden, res.Class.Methods[0].Visibility)
}

func TestExportOptionalPropertiesPassThrough(t *testing.T) {
	tgt := targetClass("Person", []model.PropertyDeclaration{
		prop("nickname", stringType, model.Nullable),
		prop("legacy", stringType, model.Unspecified),
		readonlyProp("id", intType, model.NonNull),
	}, method("resetNickname"), method("resetLegacy"), method("resetId"))

	res, err := Export(tgt)
	require.NoError(t, err)

	for i := range tgt.Properties {
		assert.True(t, model.PropertiesEqual(tgt.Properties[i], res.Class.Properties[i]), tgt.Properties[i].Name)
	}

	assert.Len(t, res.Class.VisibleMethods(), 3)
	assert.Empty(t, res.Bindings)
}

func TestExportRejectsSourceConvention(t *testing.T) {
	_, err := Export(sourceClass("Person", nil))
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestExportInheritedResettable(t *testing.T) {
	base := targetClass("Base",
		[]model.PropertyDeclaration{prop("name", stringType, model.NonNull)},
		method("resetName"),
	)

	override := prop("name", stringType, model.NonNull)
	override.Override = true
	override.Observer = model.ObserverResettableWillSet

	sub := targetClass("Sub", []model.PropertyDeclaration{override})
	sub.Superclass = base

	res, err := Export(sub)
	require.NoError(t, err)

	require.Len(t, res.Class.Properties, 1)
	assert.Equal(t, model.Resettable, res.Class.Properties[0].Nullability)
	assert.Equal(t, model.ObserverResettableWillSet, res.Class.Properties[0].Observer)
	assert.Equal(t, 0, res.Diagnostics.Len())

	require.NotNil(t, res.Class.Superclass)
	assert.Equal(t, model.Resettable, res.Class.Superclass.Properties[0].Nullability)
}

func TestExportMissingOverrideOperator(t *testing.T) {
	base := targetClass("Base",
		[]model.PropertyDeclaration{prop("name", stringType, model.NonNull)},
		method("resetName"),
	)

	override := prop("name", stringType, model.NonNull)
	override.Override = true
	override.Observer = model.ObserverWillSet

	sub := targetClass("Sub",
		[]model.PropertyDeclaration{override, prop("age", intType, model.NonNull)},
		method("resetName"), method("resetAge"), method("greet"),
	)
	sub.Superclass = base

	res, err := Export(sub)
	require.NoError(t, err)

	errs := res.Diagnostics.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostic.KindMissingOverrideOperator, errs[0].Kind)
	assert.Equal(t, "name", errs[0].Subject)
	assert.Equal(t, "Sub", errs[0].Class)

	// The offending member is dropped; everything else is still exported.
	require.Len(t, res.Class.Properties, 1)
	assert.Equal(t, "age", res.Class.Properties[0].Name)
	assert.Equal(t, model.Resettable, res.Class.Properties[0].Nullability)

	require.Len(t, res.Class.Methods, 1)
	assert.Equal(t, "greet", res.Class.Methods[0].Selector.Name)
}

func TestExportWillSetWithoutResettableAncestorIsFine(t *testing.T) {
	base := targetClass("Base", []model.PropertyDeclaration{prop("name", stringType, model.NonNull)})

	override := prop("name", stringType, model.NonNull)
	override.Override = true
	override.Observer = model.ObserverWillSet

	sub := targetClass("Sub", []model.PropertyDeclaration{override})
	sub.Superclass = base

	res, err := Export(sub)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Diagnostics.Len())
	assert.Equal(t, model.NonNull, res.Class.Properties[0].Nullability)
}

func TestExportPlainOverrideStaysNonNull(t *testing.T) {
	base := targetClass("Base",
		[]model.PropertyDeclaration{prop("name", stringType, model.NonNull)},
		method("resetName"),
	)

	override := prop("name", stringType, model.NonNull)
	override.Override = true

	sub := targetClass("Sub", []model.PropertyDeclaration{override})
	sub.Superclass = base

	res, err := Export(sub)
	require.NoError(t, err)

	require.Len(t, res.Class.Properties, 1)
	assert.Equal(t, model.NonNull, res.Class.Properties[0].Nullability)
	assert.Empty(t, res.Bindings)
	assert.Equal(t, 0, res.Diagnostics.Len())
}

func TestExportAmbiguousOptionalReset(t *testing.T) {
	tgt := targetClass("Person",
		[]model.PropertyDeclaration{
			prop("nickname", stringType.Optional(), model.NonNull),
			prop("name", stringType, model.NonNull),
		},
		method("resetNickname"), method("resetName"),
	)

	res, err := Export(tgt)
	require.NoError(t, err)

	assert.Equal(t, model.Resettable, res.Class.Properties[0].Nullability)

	warnings := res.Diagnostics.OfKind(diagnostic.KindAmbiguousOptionalReset)
	require.Len(t, warnings, 1)
	assert.Equal(t, diagnostic.SeverityWarning, warnings[0].Severity)
	assert.Equal(t, "nickname", warnings[0].Subject)
	assert.Equal(t, "Person", warnings[0].Class)
	assert.Empty(t, res.Diagnostics.Errors())
}
