package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"reset-bridger/internal/config"
	"reset-bridger/internal/description"
	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
	"reset-bridger/internal/projection"
)

const personYAML = `
classes:
  - name: Person
    properties:
      - name: firstName
        type: String
        nullability: resettable
      - name: nickname
        type: String?
        nullability: resettable
    methods:
      - name: resetFirstName
`

func imported(t *testing.T) *projection.Result {
	t.Helper()

	f, err := description.Parse([]byte(personYAML))
	require.NoError(t, err)

	classes, err := description.Build(f)
	require.NoError(t, err)

	res, err := projection.Import(classes[0])
	require.NoError(t, err)
	require.Equal(t, 2, res.Diagnostics.Len())

	return res
}

func TestPretty(t *testing.T) {
	res := imported(t)

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, res.Diagnostics, false))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "warning[AmbiguousOptionalReset] Person.nickname: "+res.Diagnostics.Items[0].Message, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "warning[ResetNameConflict] Person.resetFirstName/0: "), lines[1])
	assert.Equal(t, "  help: rename or remove the explicit resetFirstName method", lines[2])
	assert.Equal(t, "0 errors, 2 warnings", lines[len(lines)-1])
	assert.NotContains(t, out, "\x1b[")
}

func TestPrettyColor(t *testing.T) {
	var diags diagnostic.Diagnostics
	diags.Add(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Kind:     diagnostic.KindMissingOverrideOperator,
		Message:  "needs override",
		Class:    "Student",
		Subject:  "firstName",
	})

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, diags, true))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "1 error, 0 warnings")
}

func TestPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, diagnostic.Diagnostics{}, false))
	assert.Empty(t, buf.String())
}

func TestClassesYAML(t *testing.T) {
	res := imported(t)

	var buf bytes.Buffer
	require.NoError(t, Classes(&buf, []*model.ClassInterface{res.Class}, res.Diagnostics, Options{Format: config.FormatYAML}))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "target", doc.Convention)
	require.Len(t, doc.Classes, 1)
	assert.Len(t, doc.Diagnostics, 2)
	assert.Equal(t, diagnostic.SeverityWarning, doc.Diagnostics[0].Severity)

	// The rendered classes load back as the projected interface.
	rebuilt, err := description.Build(&doc.File)
	require.NoError(t, err)
	assert.True(t, model.Equivalent(res.Class, rebuilt[0]))
}

func TestClassesJSON(t *testing.T) {
	res := imported(t)

	var buf bytes.Buffer
	require.NoError(t, Classes(&buf, []*model.ClassInterface{res.Class}, res.Diagnostics, Options{Format: config.FormatJSON}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "target", doc["convention"])
	assert.Len(t, doc["classes"], 1)

	diags, ok := doc["diagnostics"].([]any)
	require.True(t, ok)
	require.Len(t, diags, 2)
	assert.Equal(t, "warning", diags[0].(map[string]any)["severity"])
}

func TestClassesPrettyAndDump(t *testing.T) {
	res := imported(t)
	classes := []*model.ClassInterface{res.Class}

	var pretty bytes.Buffer
	require.NoError(t, Classes(&pretty, classes, res.Diagnostics, Options{Format: config.FormatPretty}))
	assert.Contains(t, pretty.String(), "convention: target")
	assert.Contains(t, pretty.String(), "0 errors, 2 warnings")

	var dump bytes.Buffer
	require.NoError(t, Classes(&dump, classes, res.Diagnostics, Options{Format: config.FormatDump}))
	assert.Contains(t, dump.String(), "ClassInterface")
	assert.Contains(t, dump.String(), "resetFirstName")

	assert.Error(t, Classes(&dump, classes, res.Diagnostics, Options{Format: "xml"}))
}

func TestDiagnosticsFormats(t *testing.T) {
	res := imported(t)

	for _, format := range []string{config.FormatPretty, config.FormatYAML, config.FormatJSON, config.FormatDump} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Diagnostics(&buf, res.Diagnostics, Options{Format: format}))
			assert.Contains(t, buf.String(), "ResetNameConflict")
		})
	}

	var buf bytes.Buffer
	assert.Error(t, Diagnostics(&buf, res.Diagnostics, Options{Format: "xml"}))
}

func TestUseColor(t *testing.T) {
	assert.True(t, UseColor(config.ColorAlways, nil))
	assert.False(t, UseColor(config.ColorNever, nil))
	assert.False(t, UseColor(config.ColorAuto, nil))
}
