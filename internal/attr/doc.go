// Package attr defines the format-agnostic model for typed attribute
// declarations, along with the Loader interface for reading them from
// various sources.
//
// A Schema declares named attributes, each constrained to a type name
// registered in the coercion registry. An Object supplies loosely-typed
// values for one schema. The attr.Model is the single source of truth for
// the binder package; concrete loaders for HCL and YAML live in separate
// packages.
package attr
