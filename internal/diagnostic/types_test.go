package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warning(kind Kind, message, class, subject string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Kind: kind, Message: message, Class: class, Subject: subject}
}

func failure(kind Kind, message, class, subject string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Kind: kind, Message: message, Class: class, Subject: subject}
}

func TestDiagnosticsKeepInsertionOrder(t *testing.T) {
	var d Diagnostics

	d.Add(warning(KindResetNameConflict, "first", "Person", "resetFirstName/0"))
	d.Add(failure(KindMissingOverrideOperator, "second", "Student", "firstName"))
	d.Add(warning(KindAmbiguousOptionalReset, "third", "Person", "nickname"))

	require.Equal(t, 3, d.Len())
	assert.Equal(t, "first", d.Items[0].Message)
	assert.Equal(t, "second", d.Items[1].Message)
	assert.Equal(t, "third", d.Items[2].Message)

	assert.Len(t, d.Warnings(), 2)
	assert.Len(t, d.Errors(), 1)
	assert.Len(t, d.OfKind(KindAmbiguousOptionalReset), 1)
	assert.True(t, d.HasErrors())
}

func TestDiagnosticsError(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())
	assert.NoError(t, d.StrictError())

	d.Add(warning(KindResetNameConflict, "shadowed", "Person", "resetFirstName/0"))
	assert.NoError(t, d.Error())
	require.Error(t, d.StrictError())
	assert.Contains(t, d.StrictError().Error(), "ResetNameConflict")

	d.Add(failure(KindMissingOverrideOperator, "plain willSet", "Student", "firstName"))
	require.Error(t, d.Error())
	assert.Equal(t, "Student.firstName: [MissingOverrideOperator] plain willSet", d.Error().Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.Add(warning(KindResetNameConflict, "a", "", ""))
	b.Add(failure(KindMissingOverrideOperator, "b", "", ""))
	a.Merge(b)

	require.Equal(t, 2, a.Len())
	assert.Equal(t, "a", a.Items[0].Message)
	assert.Equal(t, "b", a.Items[1].Message)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())

	text, err := SeverityError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))
}

func TestSeverityUnmarshalText(t *testing.T) {
	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("error")))
	assert.Equal(t, SeverityError, s)
	require.NoError(t, s.UnmarshalText([]byte("warning")))
	assert.Equal(t, SeverityWarning, s)
	assert.Error(t, s.UnmarshalText([]byte("fatal")))
}
