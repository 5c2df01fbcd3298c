// Package resolve reconciles synthesized members against the explicit
// members of the same class.
//
// The only collision class handled is a synthesized member meeting an
// explicit member with the same (name, arity). The synthesized member always
// wins, whatever the input order: it stays visible, the explicit member is
// demoted to hidden, and a ResetNameConflict warning names both.
package resolve
