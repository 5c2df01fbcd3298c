package naming

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	resetPrefix  = "reset"
	setterPrefix = "set"
)

// DeriveResetName returns the reset method name for a property.
//
//	DeriveResetName("firstName") == "resetFirstName"
func DeriveResetName(property string) string {
	return resetPrefix + UpperFirst(property)
}

// SetterName returns the conventional setter name for a property.
//
//	SetterName("firstName") == "setFirstName"
func SetterName(property string) string {
	return setterPrefix + UpperFirst(property)
}

// ResetTarget returns the first property in properties whose reset method
// name is method.
func ResetTarget(method string, properties []string) (string, bool) {
	for _, p := range properties {
		if DeriveResetName(p) == method {
			return p, true
		}
	}

	return "", false
}

// UpperFirst upper-cases the first character of s using Unicode full case
// mapping and leaves the rest untouched.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	// Casers keep state between calls, so each call gets its own.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
