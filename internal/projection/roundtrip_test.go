package projection

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reset-bridger/internal/model"
)

func roundTrip(t *testing.T, c *model.ClassInterface) *model.ClassInterface {
	t.Helper()

	imported, err := Import(c)
	require.NoError(t, err)

	exported, err := Export(imported.Class)
	require.NoError(t, err)

	return exported.Class
}

func TestRoundTripSingleResettable(t *testing.T) {
	c := sourceClass("Person", []model.PropertyDeclaration{prop("name", stringType, model.Resettable)})

	back := roundTrip(t, c)
	assert.True(t, model.Equivalent(c, back), spew.Sdump(back))
	assert.Empty(t, back.Methods)
}

func TestRoundTripMixed(t *testing.T) {
	c := sourceClass("Person", []model.PropertyDeclaration{
		prop("firstName", stringType, model.Resettable),
		prop("age", intType, model.NonNull),
		prop("nickname", stringType, model.Nullable),
		prop("legacy", stringType, model.Unspecified),
		readonlyProp("id", intType, model.NonNull),
	}, method("greet", stringType), method("resetFirstName", boolType))

	back := roundTrip(t, c)
	assert.True(t, model.Equivalent(c, back), spew.Sdump(back))
}

func TestRoundTripRestoresShadowedMethod(t *testing.T) {
	c := sourceClass("Person",
		[]model.PropertyDeclaration{prop("firstName", stringType, model.Resettable)},
		method("resetFirstName"),
	)

	back := roundTrip(t, c)
	assert.True(t, model.Equivalent(c, back), spew.Sdump(back))

	m, ok := back.VisibleMethod(model.Selector{Name: "resetFirstName"})
	require.True(t, ok)
	assert.Equal(t, model.OriginExplicit, m.Origin)
}

func TestRoundTripWithSuperclass(t *testing.T) {
	base := sourceClass("Base", []model.PropertyDeclaration{prop("name", stringType, model.Resettable)})
	sub := sourceClass("Sub", []model.PropertyDeclaration{prop("age", intType, model.Resettable)})
	sub.Superclass = base

	back := roundTrip(t, sub)
	assert.True(t, model.Equivalent(sub, back))
	require.NotNil(t, back.Superclass)
	assert.True(t, model.Equivalent(base, back.Superclass))
}

func TestTargetRoundTrip(t *testing.T) {
	c := targetClass("Person",
		[]model.PropertyDeclaration{
			prop("firstName", stringType, model.NonNull),
			prop("nickname", stringType, model.Nullable),
		},
		method("resetFirstName"), method("greet"),
	)
	c.Methods[0].Origin = model.OriginSynthesized

	exported, err := Export(c)
	require.NoError(t, err)

	imported, err := Import(exported.Class)
	require.NoError(t, err)

	assert.True(t, model.Equivalent(c, imported.Class), spew.Sdump(imported.Class))
}

func TestForDispatchesOnConvention(t *testing.T) {
	src := sourceClass("Person", []model.PropertyDeclaration{prop("name", stringType, model.Resettable)})

	res, err := For(src)
	require.NoError(t, err)
	assert.Equal(t, model.ConventionTarget, res.Class.Convention)

	res, err = For(res.Class)
	require.NoError(t, err)
	assert.Equal(t, model.ConventionSource, res.Class.Convention)

	_, err = For(nil)
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestRoundTripPlainOverrideOfResettable(t *testing.T) {
	base := sourceClass("Base", []model.PropertyDeclaration{prop("name", stringType, model.Resettable)})

	override := prop("name", stringType, model.NonNull)
	override.Override = true

	sub := sourceClass("Sub", []model.PropertyDeclaration{override})
	sub.Superclass = base

	back := roundTrip(t, sub)
	assert.True(t, model.Equivalent(sub, back), spew.Sdump(back))

	require.Len(t, back.Properties, 1)
	assert.Equal(t, model.NonNull, back.Properties[0].Nullability)
	assert.Equal(t, model.Resettable, back.Superclass.Properties[0].Nullability)
}
