package bridge

import (
	"fmt"

	"reset-bridger/internal/model"
)

// Value is a property value. The absence value is nil.
type Value = any

// Absent is the absence value passed to a setter to request a reset.
var Absent Value

// Next calls the inherited setter implementation.
type Next func(value Value) error

// SetterFunc is the one setter implementation of a property on a class.
// value is Absent for a reset request. Calling next delegates to the
// superclass implementation, ending in the default store.
type SetterFunc func(obj *Object, value Value, next Next) error

// MethodFunc implements an explicit method.
type MethodFunc func(obj *Object, args ...Value) (Value, error)

type routeKind int

const (
	routeGet routeKind = iota
	routeSet
	routeReset
)

type route struct {
	property string
	kind     routeKind
}

// Class is the runtime counterpart of a ClassInterface.
type Class struct {
	iface    *model.ClassInterface
	super    *Class
	setters  map[string]SetterFunc
	defaults map[string]Value
	methods  map[model.Selector]MethodFunc
	routes   map[model.Selector]route
}

// ClassOption configures a Class.
type ClassOption func(*Class)

// WithSetter overrides the setter implementation of property on this class.
func WithSetter(property string, fn SetterFunc) ClassOption {
	return func(c *Class) {
		c.setters[property] = fn
	}
}

// WithDefault registers the value the default setter restores on reset.
func WithDefault(property string, value Value) ClassOption {
	return func(c *Class) {
		c.defaults[property] = value
	}
}

// WithMethod implements an explicit method declared on the interface.
func WithMethod(sel model.Selector, fn MethodFunc) ClassOption {
	return func(c *Class) {
		c.methods[sel] = fn
	}
}

// NewClass builds a runtime class for iface, which may be in either
// convention. super must be the runtime class of iface.Superclass.
func NewClass(iface *model.ClassInterface, super *Class, opts ...ClassOption) (*Class, error) {
	if err := model.Validate(iface); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}

	if err := checkSuper(iface, super); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}

	c := &Class{
		iface:    iface,
		super:    super,
		setters:  make(map[string]SetterFunc),
		defaults: make(map[string]Value),
		methods:  make(map[model.Selector]MethodFunc),
		routes:   make(map[model.Selector]route),
	}

	for _, opt := range opts {
		opt(c)
	}

	for name := range c.setters {
		if _, _, ok := iface.LookupProperty(name); !ok {
			return nil, fmt.Errorf("bridge: setter for %s.%s: %w", iface.Name, name, ErrUnknownProperty)
		}
	}

	for sel := range c.methods {
		if !declaresMethod(iface, sel) {
			return nil, fmt.Errorf("bridge: method %s.%s: %w", iface.Name, sel, ErrUnknownSelector)
		}
	}

	if err := c.buildRoutes(); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}

	return c, nil
}

func checkSuper(iface *model.ClassInterface, super *Class) error {
	switch {
	case iface.Superclass == nil && super == nil:
		return nil
	case iface.Superclass == nil || super == nil:
		return model.Malformed(iface.Name, "runtime superclass does not match the declared superclass")
	case iface.Superclass.Name != super.iface.Name:
		return model.Malformed(iface.Name, "runtime superclass %s does not match declared superclass %s",
			super.iface.Name, iface.Superclass.Name)
	}

	return nil
}

func declaresMethod(iface *model.ClassInterface, sel model.Selector) bool {
	for i := range iface.Methods {
		if iface.Methods[i].Selector == sel {
			return true
		}
	}

	return false
}

// buildRoutes maps the accessor selectors declared on this class. The reset
// selector of a resettable property routes to the setter in both
// conventions, ahead of any explicit method with the same selector. Two
// properties claiming one selector is malformed.
func (c *Class) buildRoutes() error {
	for i := range c.iface.Properties {
		p := &c.iface.Properties[i]

		if err := c.addRoute(p.Getter, route{property: p.Name, kind: routeGet}); err != nil {
			return err
		}

		if p.Setter != nil {
			if err := c.addRoute(*p.Setter, route{property: p.Name, kind: routeSet}); err != nil {
				return err
			}
		}

		if model.IsResettable(c.iface, p.Name) {
			if err := c.addRoute(model.ResetSelector(p.Name), route{property: p.Name, kind: routeReset}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Class) addRoute(sel model.Selector, r route) error {
	if prev, ok := c.routes[sel]; ok && prev != r {
		return model.Malformed(c.iface.Name, "selector %s is claimed by properties %q and %q", sel, prev.property, r.property)
	}

	c.routes[sel] = r

	return nil
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.iface.Name
}

// property finds the nearest declaration of name.
func (c *Class) property(name string) (model.PropertyDeclaration, bool) {
	p, _, ok := c.iface.LookupProperty(name)
	return p, ok
}

// propertyNames lists the properties visible on c, most derived first.
func (c *Class) propertyNames() []string {
	var names []string

	for cur := c.iface; cur != nil; cur = cur.Superclass {
		for i := range cur.Properties {
			names = append(names, cur.Properties[i].Name)
		}
	}

	return names
}

// resettable reports whether name is resettable on c.
func (c *Class) resettable(name string) bool {
	return model.IsResettable(c.iface, name)
}

// setterChain returns the setter overrides for property, most derived first.
func (c *Class) setterChain(property string) []SetterFunc {
	var chain []SetterFunc

	for cur := c; cur != nil; cur = cur.super {
		if fn, ok := cur.setters[property]; ok {
			chain = append(chain, fn)
		}
	}

	return chain
}

func (c *Class) defaultFor(property string) (Value, bool) {
	for cur := c; cur != nil; cur = cur.super {
		if v, ok := cur.defaults[property]; ok {
			return v, true
		}
	}

	return nil, false
}

func (c *Class) lookupRoute(sel model.Selector) (route, bool) {
	for cur := c; cur != nil; cur = cur.super {
		if r, ok := cur.routes[sel]; ok {
			return r, true
		}
	}

	return route{}, false
}

func (c *Class) lookupMethod(sel model.Selector) (MethodFunc, bool) {
	for cur := c; cur != nil; cur = cur.super {
		if fn, ok := cur.methods[sel]; ok {
			return fn, true
		}
	}

	return nil, false
}

// New returns an object with every property set to its registered default.
func (c *Class) New() *Object {
	o := &Object{class: c, values: make(map[string]Value)}

	for cur := c; cur != nil; cur = cur.super {
		for name, v := range cur.defaults {
			if _, set := o.values[name]; !set {
				o.values[name] = v
			}
		}
	}

	return o
}
