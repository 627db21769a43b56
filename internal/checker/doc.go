// Package checker is the pluggable compatibility oracle: given a bound
// value and a declared type, it answers compatible or incompatible with a
// structured reason.
//
// Three interchangeable backends share one contract and differ only in
// strictness:
//
//   - BackendBasic: minimal structural checker built on reflection. Strict
//     on primitives, recursive over generic containers, nominal on
//     everything else.
//   - BackendCUE: compiles the declared type to CUE and unifies the value
//     against it (the strictest of the three).
//   - BackendJSONSchema: compiles the declared type to a JSON Schema
//     document and validates the value's JSON image. Numeric coercion
//     follows JSON semantics, so this is the most lenient backend.
//
// The resolver and binder are oblivious to which backend is active; the
// selection is fixed per dispatch point when the wrapper is created.
package checker
