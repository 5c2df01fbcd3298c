package model

import (
	"strconv"
	"strings"
)

const (
	optionalMark = '?'
	implicitMark = '!'
)

// TypeRef names a value type together with its optional wrappings.
//
// Wraps lists the wrappings innermost first: "?" for optional, "!" for
// implicitly-unwrapped optional. "String?!" is an implicitly-unwrapped
// optional of an optional String. TypeRef is comparable with ==.
type TypeRef struct {
	Name  string
	Wraps string
}

// Void is the return type of reset methods.
var Void = TypeRef{Name: "Void"}

// ParseTypeRef parses "Name", "Name?", "Name!" and nested forms like "Name??".
func ParseTypeRef(s string) (TypeRef, bool) {
	s = strings.TrimSpace(s)

	end := len(s)
	for end > 0 && (s[end-1] == optionalMark || s[end-1] == implicitMark) {
		end--
	}

	name := strings.TrimSpace(s[:end])
	if name == "" {
		return TypeRef{}, false
	}

	return TypeRef{Name: name, Wraps: s[end:]}, true
}

// String returns the source spelling of the type.
func (t TypeRef) String() string {
	return t.Name + t.Wraps
}

// IsZero reports whether t names no type.
func (t TypeRef) IsZero() bool {
	return t.Name == ""
}

// IsOptionalLike reports whether t is optional or implicitly-unwrapped
// optional at its outermost level.
func (t TypeRef) IsOptionalLike() bool {
	return t.Wraps != ""
}

// Optional returns t wrapped in one more optional level.
func (t TypeRef) Optional() TypeRef {
	return TypeRef{Name: t.Name, Wraps: t.Wraps + string(optionalMark)}
}

// ImplicitlyUnwrapped returns t wrapped in one implicitly-unwrapped level.
func (t TypeRef) ImplicitlyUnwrapped() TypeRef {
	return TypeRef{Name: t.Name, Wraps: t.Wraps + string(implicitMark)}
}

// Selector identifies a method by name and arity.
type Selector struct {
	Name  string
	Arity uint8
}

// String returns "name/arity".
func (s Selector) String() string {
	return s.Name + "/" + strconv.Itoa(int(s.Arity))
}

// IsZero reports whether s names no method.
func (s Selector) IsZero() bool {
	return s.Name == ""
}
