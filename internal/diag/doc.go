// Package diag defines structured incompatibility reasons and their
// human-readable rendering.
//
// A single candidate's bind failure or type mismatch is an ordinary value,
// not a Go error: the resolver records it and moves on to the next
// candidate. Only total exhaustion turns the accumulated reasons into a
// user-visible error, rendered by Report.Render.
package diag
