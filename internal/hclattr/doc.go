// Package hclattr loads attribute declarations and objects from HCL files.
//
// It is the HCL-specific implementation of the attr.Loader interface. gohcl
// decodes the top-level schema and object blocks, type references are
// resolved from bare keywords such as `datetime`, and every attribute
// expression is evaluated to a cty.Value at load time, so nothing
// downstream ever touches HCL again.
//
// Whether a type keyword names a registered type is deliberately not
// checked here; the binder package performs that parity check against the
// registry once the whole model is assembled.
package hclattr
