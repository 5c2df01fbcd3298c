package description

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"reset-bridger/internal/model"
)

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// LoadFile loads and parses a description file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML (or JSON) data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &model.MalformedInputError{Reason: "cannot parse description", Err: err}
	}

	applyDefaults(&f)

	if f.Version != CurrentVersion {
		return nil, model.Malformed("", "unsupported description version %q", f.Version)
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Convention == "" {
		f.Convention = model.ConventionSource.String()
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal description: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write description file %s: %w", path, err)
	}

	return nil
}
