// Package resolver picks, at call time, which declared candidate of a
// dispatch point runs for a concrete set of arguments.
//
// Candidates are tried strictly in declaration order. For each one: bind
// the arguments; on bind failure record the reason and advance. Otherwise
// type-check only the relevant parameters; on the first mismatch record it
// and advance. The first fully compatible candidate is invoked - the only
// observable side effect of resolution - and later candidates are never
// consulted, even if one of them would match "better". There is no scoring
// and no most-specific heuristic.
//
// Discovery and relevant-parameter analysis run once, on first call, and
// are published atomically: concurrent first calls may redundantly
// recompute the same pure result, but a partially built snapshot is never
// observable. Resolution itself performs no I/O and is bounded by the
// number of candidates.
package resolver
