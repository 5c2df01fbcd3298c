package model

import "reset-bridger/internal/common"

//go:generate go tool stringer -type=Nullability,Origin,Visibility,Observer,Direction -linecomment -output=kinds_string.go

// Convention identifies one of the two bridged declaration styles.
type Convention int

const (
	// ConventionSource is the nullable-setter / non-optional-getter style.
	ConventionSource Convention = iota
	// ConventionTarget is the plain-value-plus-reset-method style.
	ConventionTarget
)

// String returns a human-readable convention name.
func (c Convention) String() string {
	switch c {
	case ConventionSource:
		return "source"
	case ConventionTarget:
		return "target"
	default:
		return common.UnknownStr
	}
}

// ParseConvention parses a convention name as written in description files.
func ParseConvention(s string) (Convention, bool) {
	switch s {
	case "source":
		return ConventionSource, true
	case "target":
		return ConventionTarget, true
	default:
		return 0, false
	}
}

// Nullability is the nullability kind of a property.
type Nullability int

const (
	// NonNull properties never hold the absence value.
	NonNull Nullability = iota // nonnull
	// Nullable properties are optional in both directions.
	Nullable // nullable
	// Unspecified properties have no nullability annotation. They bridge as
	// implicitly-unwrapped optionals.
	Unspecified // unspecified
	// Resettable properties have a non-optional getter and a setter that
	// accepts the absence value as a reset request. Source convention only.
	Resettable // resettable
)

// ParseNullability parses a nullability kind. The empty string means NonNull.
func ParseNullability(s string) (Nullability, bool) {
	switch s {
	case "", "nonnull":
		return NonNull, true
	case "nullable":
		return Nullable, true
	case "unspecified":
		return Unspecified, true
	case "resettable":
		return Resettable, true
	default:
		return 0, false
	}
}

// Origin records whether a member was written by the class author or
// generated by a projector.
type Origin int

const (
	OriginExplicit    Origin = iota // explicit
	OriginSynthesized               // synthesized
)

// Visibility controls whether a method is part of the externally visible
// member list of its convention.
type Visibility int

const (
	Visible Visibility = iota // visible
	// Hidden members are kept for inspection but cannot be called.
	Hidden // hidden
)

// Observer is the before-set observer clause attached to a property override.
type Observer int

const (
	ObserverNone Observer = iota // none
	// ObserverWillSet is the plain before-set spelling. Its new value is the
	// non-optional value type.
	ObserverWillSet // willSet
	// ObserverResettableWillSet is the before-set spelling that also observes
	// the absence value.
	ObserverResettableWillSet // resettableWillSet
)

// ParseObserver parses an observer spelling. The empty string means none.
func ParseObserver(s string) (Observer, bool) {
	switch s {
	case "", "none":
		return ObserverNone, true
	case "willSet":
		return ObserverWillSet, true
	case "resettableWillSet":
		return ObserverResettableWillSet, true
	default:
		return 0, false
	}
}

// Direction tells which projector produced a ResetBinding.
type Direction int

const (
	// ImportGenerated bindings come from a synthesized reset method.
	ImportGenerated Direction = iota // import-generated
	// ExportConsumed bindings come from a reset method folded into a setter.
	ExportConsumed // export-consumed
)

// ParseOrigin parses an origin name. The empty string means explicit.
func ParseOrigin(s string) (Origin, bool) {
	switch s {
	case "", "explicit":
		return OriginExplicit, true
	case "synthesized":
		return OriginSynthesized, true
	default:
		return 0, false
	}
}
