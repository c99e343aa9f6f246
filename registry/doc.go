// Package registry implements the type-coercion registry at the heart of
// chronotype.
//
// A Registry maps type names such as "datetime" to TypeDescriptors. Each
// descriptor pairs the canonical cty capsule type registered under that name
// with an ordered list of CoercionRules that build canonical values from
// loosely-typed inputs: numbers, strings, string-keyed mappings and foreign
// capsules.
//
// The registry is populated once during application startup (see the Module
// interface) and read thereafter. Coerce is the single dispatch point: it
// hands back values that are already canonical untouched, then tries each
// rule in registration order and lets the first one whose shape predicate
// matches decide the outcome.
//
// This package performs no logging and no I/O; every failure is returned to
// the caller as one of the three error kinds in errors.go.
package registry
