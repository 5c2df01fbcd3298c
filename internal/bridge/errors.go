package bridge

import "errors"

var (
	// ErrUnknownProperty is returned for properties no class in the chain declares.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrUnknownSelector is returned by Send for selectors that route nowhere.
	ErrUnknownSelector = errors.New("unknown selector")
	// ErrReadOnly is returned when setting a property without a setter.
	ErrReadOnly = errors.New("property is read-only")
	// ErrNotResettable is returned by Reset, and by Send for a reset selector,
	// when the property is not resettable.
	ErrNotResettable = errors.New("property is not resettable")
	// ErrAbsentValue is returned when the absence value is passed to a setter
	// that does not accept it.
	ErrAbsentValue = errors.New("property does not accept the absence value")
	// ErrNoDefault is returned when a resettable property is reset by the
	// default setter but no default value was registered.
	ErrNoDefault = errors.New("no default value registered")
	// ErrArity is returned by Send when the argument count does not match.
	ErrArity = errors.New("wrong number of arguments")
)
