// Package temporal defines chronotype's four canonical date/time value
// types as cty capsule types, together with the coercion rules that build
// them from loosely-typed inputs:
//
//   - datetime: an instant in time, carried as a time.Time. Coercible from
//     an epoch-seconds number, the literal string "now", or a string-keyed
//     mapping of constructor fields (year, month, day, ...).
//   - duration: an elapsed span, carried as a time.Duration. Coercible from
//     a seconds number or a mapping of unit fields (weeks .. nanoseconds).
//   - timezone: a *time.Location. Coercible from an IANA name or a fixed
//     numeric UTC offset string.
//   - locale: a BCP 47 language.Tag. Coercible from a tag string or from
//     any foreign capsule whose Go value implements LanguageTagger.
//
// Every conversion delegates to a standard library or x/text constructor
// and surfaces that constructor's error unchanged; this package invents no
// parsing of its own. In particular there is no rule for free-form datetime
// strings: "now" is matched as an exact literal, and anything else fails
// with a no-applicable-rule error rather than a half-hearted parse.
//
// Module wires the whole table into a registry.Registry.
package temporal
