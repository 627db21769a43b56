// Package analysis computes which parameters of a dispatch point actually
// need runtime type checks.
//
// A parameter is relevant iff its declared type differs across at least two
// candidates. Skipping everything else is a pure performance optimization:
// resolution outcome must be identical with or without it (the resolver's
// tests fuzz this equivalence against a check-everything reference).
//
// The analysis is a pure function of immutable signatures. It runs once per
// dispatch point, on first call, and the result is cached for the process
// lifetime.
package analysis
