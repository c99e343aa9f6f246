// Package yamlattr loads attribute declarations and objects from YAML
// documents. It is the second attr.Loader implementation and exists to keep
// the model honest: nothing downstream may assume HCL.
//
// Decoded scalars and mappings map onto the same cty shapes the HCL loader
// produces, so both formats feed the coercion registry identically. One
// YAML-specific nicety falls out of the decoder itself: unquoted ISO 8601
// scalars arrive as time.Time values and are wrapped directly as canonical
// datetime capsules, which then take the identity path through Coerce.
// Quoted date strings stay strings and fail coercion like any other string.
package yamlattr
