// Package binder maps a concrete call's positional and keyword arguments
// onto a candidate signature's named parameters.
//
// Binding is standard positional/keyword/arity matching. It never type
// checks: a successful bind only means the call's shape fits the
// signature. Bind failures are ordinary values (diag.BindFailure) consumed
// by the resolver loop, not Go errors.
//
// Defaults live on the stub signature, not on candidates. Before binding
// against a candidate, ApplyDefaults partially binds the raw call against
// the stub, back-fills unsupplied defaults, and rebuilds the concrete
// argument lists according to how each stub parameter is classified in the
// candidate's signature. If the partial bind itself fails, defaults are
// skipped and the raw arguments are used as given - a soft fail, not an
// error.
package binder
