// Package render writes projected classes and diagnostics in the supported
// output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"reset-bridger/internal/config"
	"reset-bridger/internal/description"
	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
)

// Options controls rendering.
type Options struct {
	// Format is one of the config.Format* values.
	Format string
	// Color enables ANSI colors in the pretty format.
	Color bool
}

// Document is the structured output of a projection run. encoding/json
// promotes the embedded File fields the same way the inline tag does.
type Document struct {
	description.File `yaml:",inline"`

	Diagnostics []diagnostic.Diagnostic `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// UseColor resolves a color mode against f. The auto mode enables colors
// only when f is a terminal.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return f != nil && isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Classes writes classes and their diagnostics.
func Classes(w io.Writer, classes []*model.ClassInterface, diags diagnostic.Diagnostics, opts Options) error {
	if opts.Format == config.FormatDump {
		dumper.Fdump(w, classes, diags.Items)
		return nil
	}

	file, err := description.FromModel(classes)
	if err != nil {
		return err
	}

	doc := Document{File: *file}

	switch opts.Format {
	case config.FormatPretty, "":
		if err := writeYAML(w, file); err != nil {
			return err
		}

		if diags.Len() > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		return Pretty(w, diags, opts.Color)
	case config.FormatYAML:
		doc.Diagnostics = diags.Items
		return writeYAML(w, &doc)
	case config.FormatJSON:
		doc.Diagnostics = diags.Items
		return writeJSON(w, &doc)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

// Diagnostics writes diagnostics alone.
func Diagnostics(w io.Writer, diags diagnostic.Diagnostics, opts Options) error {
	switch opts.Format {
	case config.FormatPretty, "":
		return Pretty(w, diags, opts.Color)
	case config.FormatYAML:
		return writeYAML(w, &diags)
	case config.FormatJSON:
		return writeJSON(w, &diags)
	case config.FormatDump:
		dumper.Fdump(w, diags.Items)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
