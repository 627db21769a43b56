// Package registry implements the registration boundary for overload
// dispatch points.
//
// Alternative implementations are declared explicitly at program wiring
// time: each declaration carries the implementation reference and a
// sig.Signature value built by the caller. There is no runtime
// introspection of callables.
//
// Declaration order is a semantic contract, not cosmetic: resolution is
// first-match, so Discover must return candidates in exactly the order they
// were declared.
//
// The registry performs no type checking. It only enumerates.
package registry
