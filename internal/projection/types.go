package projection

import (
	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
)

// Result is the output of one projection call.
type Result struct {
	// Class is the projected interface.
	Class *model.ClassInterface
	// Diagnostics lists per-member problems in production order.
	Diagnostics diagnostic.Diagnostics
	// Bindings are the reset bindings computed while projecting. They are
	// not part of Class and are only kept for inspection.
	Bindings []model.ResetBinding
}

// Option configures a projection call.
type Option func(*options)

type options struct {
	superclass    *model.ClassInterface
	hasSuperclass bool
}

// WithSuperclass sets the already projected superclass to link the output
// to. Without it the superclass chain is projected recursively.
func WithSuperclass(super *model.ClassInterface) Option {
	return func(o *options) {
		o.superclass = super
		o.hasSuperclass = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// For dispatches on the convention of class: source classes are imported,
// target classes are exported.
func For(class *model.ClassInterface, opts ...Option) (*Result, error) {
	if class != nil && class.Convention == model.ConventionTarget {
		return Export(class, opts...)
	}

	return Import(class, opts...)
}
