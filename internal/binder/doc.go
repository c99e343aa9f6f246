// Package binder pairs a loaded attribute model with the coercion registry.
//
// It works in two phases. ValidateModel is the startup parity check: every
// attribute declaration must reference a registered type and every object
// must address a declared schema and declared attributes. Bind then walks
// each object, applies declaration defaults and coerces every value into
// its canonical form.
//
// Binding has no shared mutable state; each object binds independently and
// a failed object aborts the run with its location in the error.
package binder
