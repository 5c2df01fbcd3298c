// Package diagnostic provides the ordered, structured warnings and errors a
// projection produces alongside its result.
//
// Diagnostics are data, not control flow: a projector records every
// per-member problem and keeps going. The kinds defined here are the external
// contract tooling relies on:
//   - ResetNameConflict: a synthesized reset accessor shadows an explicit method
//   - AmbiguousOptionalReset: a resettable property of optional type
//   - MissingOverrideOperator: a plain before-set observer on an inherited
//     resettable property
package diagnostic
