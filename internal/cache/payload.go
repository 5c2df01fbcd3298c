package cache

import (
	"fmt"

	"reset-bridger/internal/description"
	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
	"reset-bridger/internal/projection"
)

// Current schema version - increment when Payload or the key format changes.
const schemaVersion uint16 = 1

// Payload is the serialized form of a projection result.
type Payload struct {
	Schema      uint16
	Convention  string
	Class       description.Class
	Diagnostics []diagnostic.Diagnostic
	Bindings    []model.ResetBinding
}

// NewPayload flattens res. The projected superclass is kept by name only.
func NewPayload(res *projection.Result) *Payload {
	return &Payload{
		Schema:      schemaVersion,
		Convention:  res.Class.Convention.String(),
		Class:       description.FromClass(res.Class),
		Diagnostics: res.Diagnostics.Items,
		Bindings:    res.Bindings,
	}
}

// Restore rebuilds the result, linking the class to super.
func (p *Payload) Restore(super *model.ClassInterface) (*projection.Result, error) {
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("cache: payload schema %d, want %d", p.Schema, schemaVersion)
	}

	conv, ok := model.ParseConvention(p.Convention)
	if !ok {
		return nil, fmt.Errorf("cache: payload has unknown convention %q", p.Convention)
	}

	class, err := description.BuildClass(&p.Class, conv, super)
	if err != nil {
		return nil, fmt.Errorf("cache: restore %s: %w", p.Class.Name, err)
	}

	return &projection.Result{
		Class:       class,
		Diagnostics: diagnostic.Diagnostics{Items: p.Diagnostics},
		Bindings:    p.Bindings,
	}, nil
}
