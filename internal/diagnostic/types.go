package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"reset-bridger/internal/common"
)

// Kind identifies a class of diagnostic.
type Kind string

const (
	// KindResetNameConflict: a synthesized reset accessor collides with an
	// explicit same-name zero-argument method, which is hidden.
	KindResetNameConflict Kind = "ResetNameConflict"
	// KindAmbiguousOptionalReset: a resettable property's value type is
	// itself optional, so the setter parameter is doubly optional.
	KindAmbiguousOptionalReset Kind = "AmbiguousOptionalReset"
	// KindMissingOverrideOperator: an override observes an inherited
	// resettable property with the plain before-set spelling.
	KindMissingOverrideOperator Kind = "MissingOverrideOperator"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText makes severities render as names in YAML and JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}

	return nil
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `yaml:"severity" json:"severity" msgpack:"severity"`
	// Kind is the stable identifier of this type of diagnostic.
	Kind Kind `yaml:"kind" json:"kind" msgpack:"kind"`
	// Message is the human-readable description.
	Message string `yaml:"message" json:"message" msgpack:"message"`
	// Class is the class the subject belongs to.
	Class string `yaml:"class,omitempty" json:"class,omitempty" msgpack:"class"`
	// Subject is the exact property name or method selector involved.
	Subject string `yaml:"subject" json:"subject" msgpack:"subject"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty" msgpack:"suggestions"`
}

// Diagnostics is an ordered list of diagnostics. The order is the order in
// which the projection produced them and is deterministic for a given input.
type Diagnostics struct {
	Items []Diagnostic `yaml:"items" json:"items" msgpack:"items"`
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.Items = append(d.Items, diag)
}

// Errors returns the error diagnostics in order.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.filter(SeverityError)
}

// Warnings returns the warning diagnostics in order.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.filter(SeverityWarning)
}

// OfKind returns the diagnostics of the given kind in order.
func (d *Diagnostics) OfKind(kind Kind) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.Items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}

	return out
}

func (d *Diagnostics) filter(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.Items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// Len returns the number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Items)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.Items {
		if item.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Merge appends other's diagnostics after d's, keeping both orders.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Items = append(d.Items, other.Items...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	return d.errorOf(SeverityError)
}

// StrictError is like Error but also fails on warnings.
func (d *Diagnostics) StrictError() error {
	return d.errorOf(SeverityWarning)
}

func (d *Diagnostics) errorOf(minSeverity Severity) error {
	var parts []string

	for _, item := range d.Items {
		if item.Severity >= minSeverity {
			parts = append(parts, item.String())
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Class != "" || d.Subject != "" {
		prefix = append(prefix, common.QualifiedName(d.Class, d.Subject))
	}

	msg := d.Message
	if d.Kind != "" {
		msg = fmt.Sprintf("[%s] %s", d.Kind, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
