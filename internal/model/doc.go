// Package model holds the immutable in-memory representation of a class
// interface in either declaration convention.
//
// Two conventions are modelled:
//   - Source: nullable-setter / non-optional-getter properties. A property
//     whose setter accepts "no value" as a reset request is Resettable.
//   - Target: plain value properties plus an explicit zero-argument reset
//     method per resettable property.
//
// Values of ClassInterface are built once (usually by package description)
// and never mutated afterwards. Projectors copy what they need and return a
// new ClassInterface.
package model
