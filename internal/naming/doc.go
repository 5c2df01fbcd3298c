// Package naming derives the member names the projectors and the call bridge
// agree on.
//
// The central rule is DeriveResetName: "reset" followed by the property name
// with its first character upper-cased. Both projection directions and the
// runtime dispatch table use it, so a round trip always lands on the same
// names.
//
// The package also ranks "did you mean" suggestions by edit distance for
// description-loading errors.
package naming
