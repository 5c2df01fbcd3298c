// Package projection translates class interfaces between the two
// declaration conventions.
//
// Pipeline, per class:
//  1. Validate the input structure (malformed input fails the whole call).
//  2. Walk properties in declaration order, consulting naming.DeriveResetName
//     for every candidate and recording transient ResetBindings.
//  3. Pass explicit and synthesized methods through resolve.Resolve.
//  4. Return a new ClassInterface plus the ordered diagnostics.
//
// Import goes from the source convention to the target convention; Export
// goes back. Both are pure: inputs are never modified and identical inputs
// produce identical outputs.
package projection
