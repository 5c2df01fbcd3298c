package driver

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Filter selects classes by name with include and exclude glob patterns.
// The zero value selects every class.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles the include and exclude patterns.
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}

	for _, p := range include {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}

		f.include = append(f.include, g)
	}

	for _, p := range exclude {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		f.exclude = append(f.exclude, g)
	}

	return f, nil
}

// Match reports whether the class named name is selected. A name must match
// at least one include pattern, when there are any, and no exclude pattern.
func (f *Filter) Match(name string) bool {
	if f == nil {
		return true
	}

	for _, g := range f.exclude {
		if g.Match(name) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, g := range f.include {
		if g.Match(name) {
			return true
		}
	}

	return false
}
