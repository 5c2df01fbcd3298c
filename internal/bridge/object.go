package bridge

import (
	"fmt"

	"reset-bridger/internal/common"
	"reset-bridger/internal/model"
	"reset-bridger/internal/naming"
)

// Object is an instance of a runtime Class.
type Object struct {
	class  *Class
	values map[string]Value
}

// Class returns the runtime class of o.
func (o *Object) Class() *Class {
	return o.class
}

// Get reads a property.
func (o *Object) Get(property string) (Value, error) {
	if _, ok := o.class.property(property); !ok {
		return nil, o.errorf(property, ErrUnknownProperty)
	}

	return o.values[property], nil
}

// Set invokes the setter of property. Passing Absent to a resettable
// property requests a reset.
func (o *Object) Set(property string, value Value) error {
	p, ok := o.class.property(property)
	if !ok {
		return o.errorf(property, ErrUnknownProperty)
	}

	if p.ReadOnly() {
		return o.errorf(property, ErrReadOnly)
	}

	if value == Absent && !o.acceptsAbsent(&p) {
		return o.errorf(property, ErrAbsentValue)
	}

	return o.dispatchSet(property, value)
}

// Reset is the reset operation of a resettable property. It is exactly
// Set(property, Absent).
func (o *Object) Reset(property string) error {
	if _, ok := o.class.property(property); !ok {
		return o.errorf(property, ErrUnknownProperty)
	}

	if !o.class.resettable(property) {
		return o.errorf(property, ErrNotResettable)
	}

	return o.Set(property, Absent)
}

// Send invokes a selector the way a caller in either convention would
// spell it: a getter, a setter, a reset method or an explicit method.
func (o *Object) Send(sel model.Selector, args ...Value) (Value, error) {
	if len(args) != int(sel.Arity) {
		return nil, fmt.Errorf("%s: %w: want %d, got %d",
			common.QualifiedName(o.class.Name(), sel.String()), ErrArity, sel.Arity, len(args))
	}

	if r, ok := o.class.lookupRoute(sel); ok {
		switch r.kind {
		case routeGet:
			return o.Get(r.property)
		case routeSet:
			return nil, o.Set(r.property, args[0])
		case routeReset:
			return nil, o.Reset(r.property)
		}
	}

	if fn, ok := o.class.lookupMethod(sel); ok {
		return fn(o, args...)
	}

	if sel.Arity == 0 {
		if p, ok := naming.ResetTarget(sel.Name, o.class.propertyNames()); ok {
			return nil, o.errorf(p, ErrNotResettable)
		}
	}

	return nil, fmt.Errorf("%s: %w", common.QualifiedName(o.class.Name(), sel.String()), ErrUnknownSelector)
}

// dispatchSet runs the setter chain of property, most derived first. It is
// the single entry point every setter spelling goes through.
func (o *Object) dispatchSet(property string, value Value) error {
	chain := o.class.setterChain(property)

	var call func(i int, v Value) error

	call = func(i int, v Value) error {
		if i == len(chain) {
			return o.store(property, v)
		}

		return chain[i](o, v, func(next Value) error {
			return call(i+1, next)
		})
	}

	return call(0, value)
}

// store is the default setter: it keeps the value, and on Absent restores
// the registered default of a resettable property.
func (o *Object) store(property string, value Value) error {
	if value != Absent || !o.class.resettable(property) {
		o.values[property] = value
		return nil
	}

	def, ok := o.class.defaultFor(property)
	if !ok {
		return o.errorf(property, ErrNoDefault)
	}

	o.values[property] = def

	return nil
}

func (o *Object) acceptsAbsent(p *model.PropertyDeclaration) bool {
	if p.Nullability == model.Nullable || p.Nullability == model.Unspecified {
		return true
	}

	return o.class.resettable(p.Name)
}

func (o *Object) errorf(property string, err error) error {
	return fmt.Errorf("%s: %w", common.QualifiedName(o.class.Name(), property), err)
}
