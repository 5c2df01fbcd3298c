// Package bridge is the runtime side of the declaration bridge: it routes
// calls made in either convention to one setter implementation per property.
//
// For a resettable property there are two call spellings:
//
//	obj.Reset("firstName")          // target convention: resetFirstName()
//	obj.Set("firstName", Absent)    // source convention: setFirstName(nil)
//
// Reset is only a named alias for Set(property, Absent). Both walk the same
// setter chain, so a subclass that overrides the setter changes the effect of
// both spellings identically, and the two can never leave an object in
// different states.
//
// Objects are not safe for concurrent use.
package bridge
